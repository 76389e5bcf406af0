package geometry

import (
	"errors"
	"math"
)

// ErrEmptyRect is returned when a pointer is normalised against a zero-sized canvas.
var ErrEmptyRect = errors.New("canvas rect has no area")

// Rect is a canvas bounding rectangle in client pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NDC is a point in normalised device coordinates, both axes in [-1, 1], Y up.
type NDC struct {
	X float64
	Y float64
}

// NormalizePointer converts client coordinates to device coordinates. Y is inverted
// because client space grows downwards.
func NormalizePointer(clientX, clientY float64, rect Rect) (NDC, error) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return NDC{}, ErrEmptyRect
	}
	return NDC{
		X: ((clientX-rect.Left)/rect.Width)*2 - 1,
		Y: -((clientY-rect.Top)/rect.Height)*2 + 1,
	}, nil
}

// PerspectiveCamera is a pinhole camera looking from Position towards Target.
type PerspectiveCamera struct {
	Position Vec3    `json:"position"`
	Target   Vec3    `json:"target"`
	Up       Vec3    `json:"up"`
	FOV      float64 `json:"fov"` // vertical field of view, degrees
	Aspect   float64 `json:"aspect"`
}

// DefaultCamera mirrors the builder's initial orbit view over a room.
func DefaultCamera(aspect float64) PerspectiveCamera {
	if aspect <= 0 {
		aspect = 16.0 / 9.0
	}
	return PerspectiveCamera{
		Position: Vec3{X: 0, Y: 10, Z: 12},
		Target:   Vec3{},
		Up:       Vec3{Y: 1},
		FOV:      50,
		Aspect:   aspect,
	}
}

// RayFromNDC builds the ray leaving the camera through the given device point.
func (c PerspectiveCamera) RayFromNDC(p NDC) Ray {
	forward := c.Target.Sub(c.Position).Normalize()
	up := c.Up
	if up.Length() == 0 {
		up = Vec3{Y: 1}
	}
	right := forward.Cross(up).Normalize()
	if right.Length() == 0 {
		// looking straight along the up axis; pick any perpendicular
		right = forward.Cross(Vec3{Z: -1}).Normalize()
	}
	trueUp := right.Cross(forward)

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	tanHalf := math.Tan(c.FOV * math.Pi / 360)

	dir := forward.
		Add(right.Scale(p.X * tanHalf * aspect)).
		Add(trueUp.Scale(p.Y * tanHalf))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}
