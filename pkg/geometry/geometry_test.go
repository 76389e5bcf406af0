package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePointer(t *testing.T) {
	rect := Rect{Left: 100, Top: 50, Width: 800, Height: 600}

	center, err := NormalizePointer(500, 350, rect)
	require.NoError(t, err)
	assert.InDelta(t, 0, center.X, 1e-9)
	assert.InDelta(t, 0, center.Y, 1e-9)

	topLeft, err := NormalizePointer(100, 50, rect)
	require.NoError(t, err)
	assert.InDelta(t, -1, topLeft.X, 1e-9)
	assert.InDelta(t, 1, topLeft.Y, 1e-9)

	bottomRight, err := NormalizePointer(900, 650, rect)
	require.NoError(t, err)
	assert.InDelta(t, 1, bottomRight.X, 1e-9)
	assert.InDelta(t, -1, bottomRight.Y, 1e-9)

	_, err = NormalizePointer(10, 10, Rect{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrEmptyRect)
}

func TestCenterRayHitsTarget(t *testing.T) {
	cam := PerspectiveCamera{
		Position: Vec3{X: 0, Y: 10, Z: 10},
		Target:   Vec3{X: 2, Y: 0, Z: -3},
		Up:       Vec3{Y: 1},
		FOV:      60,
		Aspect:   1.5,
	}
	hit, ok := cam.RayFromNDC(NDC{}).IntersectPlane(GroundPlane)
	require.True(t, ok)
	assert.True(t, hit.ApproxEqual(Vec3{X: 2, Y: 0, Z: -3}, 1e-9), "got %+v", hit)
}

func TestOffCenterRayMovesAcrossFloor(t *testing.T) {
	cam := DefaultCamera(1)
	left, ok := cam.RayFromNDC(NDC{X: -0.5}).IntersectPlane(GroundPlane)
	require.True(t, ok)
	right, ok := cam.RayFromNDC(NDC{X: 0.5}).IntersectPlane(GroundPlane)
	require.True(t, ok)
	assert.Less(t, left.X, 0.0)
	assert.Greater(t, right.X, 0.0)
	assert.InDelta(t, left.Z, right.Z, 1e-9)
}

func TestParallelRayMissesPlane(t *testing.T) {
	ray := Ray{Origin: Vec3{Y: 1.6}, Direction: Vec3{Z: -1}}
	_, ok := ray.IntersectPlane(GroundPlane)
	assert.False(t, ok)
}

func TestRayPointingAwayMissesPlane(t *testing.T) {
	ray := Ray{Origin: Vec3{Y: 2}, Direction: Vec3{Y: 1}}
	_, ok := ray.IntersectPlane(GroundPlane)
	assert.False(t, ok)
}

func TestHorizonCameraCenterRayIsParallel(t *testing.T) {
	cam := PerspectiveCamera{
		Position: Vec3{Y: 1.7},
		Target:   Vec3{Y: 1.7, Z: -10},
		Up:       Vec3{Y: 1},
		FOV:      50,
		Aspect:   1,
	}
	ray := cam.RayFromNDC(NDC{})
	assert.InDelta(t, 0, ray.Direction.Y, 1e-12)
	_, ok := ray.IntersectPlane(GroundPlane)
	assert.False(t, ok)
}

func TestHorizontalPlane(t *testing.T) {
	ray := Ray{Origin: Vec3{Y: 5}, Direction: Vec3{Y: -1}}
	hit, ok := ray.IntersectPlane(HorizontalPlane(2))
	require.True(t, ok)
	assert.InDelta(t, 2, hit.Y, 1e-9)
}

func TestVectorOps(t *testing.T) {
	a := Vec3{X: 1}
	b := Vec3{Y: 1}
	assert.Equal(t, Vec3{Z: 1}, a.Cross(b))
	assert.InDelta(t, math.Sqrt2, a.Add(b).Length(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
