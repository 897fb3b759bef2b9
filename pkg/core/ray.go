package core

import "math"

// DefaultRayTMin is the lower bound of a ray's valid hit interval. It keeps
// secondary rays from re-hitting the surface they start on.
const DefaultRayTMin = 0.0001

// Ray represents a ray with an origin, a direction and the open interval
// (TMin, TMax) in which hits count. Callers narrow TMax to bound a query,
// e.g. shadow rays stop at the light.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a ray valid on (DefaultRayTMin, +Inf)
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      DefaultRayTMin,
		TMax:      math.Inf(1),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t lies strictly inside (TMin, TMax).
// NaN never does.
func (r Ray) InRange(t float64) bool {
	return t > r.TMin && t < r.TMax
}
