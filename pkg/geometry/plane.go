package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point         core.Vec3 // A point on the plane
	Normal        core.Vec3 // Unit normal vector
	MaterialIndex int       // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, materialIndex int) *Plane {
	return &Plane{
		Point:         point,
		Normal:        normal.Normalize(),
		MaterialIndex: materialIndex,
	}
}

// Hit tests if a ray intersects with the plane.
// A ray parallel to the plane divides by zero; the resulting Inf or NaN
// fails the range check and reports a miss.
func (p *Plane) Hit(ray core.Ray, mode HitMode) (HitRecord, bool) {
	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / ray.Direction.Dot(p.Normal)

	if !ray.InRange(t) {
		return HitRecord{}, false
	}

	if mode == AnyHit {
		return HitRecord{}, true
	}

	return HitRecord{
		DidHit:        true,
		Point:         ray.At(t),
		Normal:        p.Normal,
		MaterialIndex: p.MaterialIndex,
		T:             t,
	}, true
}
