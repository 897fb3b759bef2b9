package geometry

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) *Sphere {
	return &Sphere{
		Center:        center,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, mode HitMode) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c

	// Tangent rays count as misses
	if !(discriminant > 0) {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if !ray.InRange(root) {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2 * a)
		if !ray.InRange(root) {
			return HitRecord{}, false
		}
	}

	if mode == AnyHit {
		return HitRecord{}, true
	}

	point := ray.At(root)
	return HitRecord{
		DidHit:        true,
		Point:         point,
		Normal:        point.Subtract(s.Center).Normalize(),
		MaterialIndex: s.MaterialIndex,
		T:             root,
	}, true
}
