package geometry

import "math"

// Epsilon below which a ray is treated as parallel to a plane.
const parallelEpsilon = 1e-9

// Ray is a half-line starting at Origin along the unit Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Plane is the set of points p with Normal·p + Constant = 0.
type Plane struct {
	Normal   Vec3
	Constant float64
}

// GroundPlane is the horizontal room floor at y = 0.
var GroundPlane = Plane{Normal: Vec3{Y: 1}, Constant: 0}

// HorizontalPlane returns the plane y = height.
func HorizontalPlane(height float64) Plane {
	return Plane{Normal: Vec3{Y: 1}, Constant: -height}
}

// IntersectPlane returns the point where the ray meets the plane. It reports false
// when the ray is parallel to the plane or the plane lies behind the origin.
func (r Ray) IntersectPlane(p Plane) (Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return Vec3{}, false
	}
	t := -(p.Normal.Dot(r.Origin) + p.Constant) / denom
	if t < 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		return Vec3{}, false
	}
	return r.At(t), true
}
