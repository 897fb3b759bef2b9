package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// CullMode selects which triangle faces are discarded
type CullMode int

const (
	NoCulling CullMode = iota
	BackFaceCulling
	FrontFaceCulling
)

// String returns the cull mode name
func (c CullMode) String() string {
	switch c {
	case NoCulling:
		return "none"
	case BackFaceCulling:
		return "back"
	case FrontFaceCulling:
		return "front"
	default:
		return "unknown"
	}
}

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2    core.Vec3 // The three vertices
	Normal        core.Vec3 // Precomputed unit face normal
	CullMode      CullMode
	MaterialIndex int
}

// NewTriangle creates a new triangle, deriving the normal from the winding
// order (V1-V0) × (V2-V0)
func NewTriangle(v0, v1, v2 core.Vec3, cullMode CullMode, materialIndex int) *Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return NewTriangleWithNormal(v0, v1, v2, normal, cullMode, materialIndex)
}

// NewTriangleWithNormal creates a new triangle with a custom normal
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, cullMode CullMode, materialIndex int) *Triangle {
	return &Triangle{
		V0:            v0,
		V1:            v1,
		V2:            v2,
		Normal:        normal,
		CullMode:      cullMode,
		MaterialIndex: materialIndex,
	}
}

// Hit tests if a ray intersects with the triangle.
//
// The hit distance comes from the plane through the centroid with the
// precomputed normal; the hit point is then checked against each edge.
// Culling runs before anything else. Closest-hit queries cull back faces when
// normal·direction > 0, any-hit queries use the opposite sign (the shadow ray
// looks at the surface from the light's side).
func (t *Triangle) Hit(ray core.Ray, mode HitMode) (HitRecord, bool) {
	return hitTriangle(t.V0, t.V1, t.V2, t.Normal, t.CullMode, t.MaterialIndex, ray, mode)
}

func hitTriangle(v0, v1, v2, normal core.Vec3, cullMode CullMode, materialIndex int, ray core.Ray, mode HitMode) (HitRecord, bool) {
	dotNormalDir := normal.Dot(ray.Direction)

	if culled(cullMode, mode, dotNormalDir) {
		return HitRecord{}, false
	}

	// Parallel to the triangle's plane
	if dotNormalDir == 0 {
		return HitRecord{}, false
	}

	center := v0.Add(v1).Add(v2).Divide(3)
	t := center.Subtract(ray.Origin).Dot(normal) / dotNormalDir
	if !ray.InRange(t) {
		return HitRecord{}, false
	}

	point := ray.At(t)

	if v1.Subtract(v0).Cross(point.Subtract(v0)).Dot(normal) < 0 {
		return HitRecord{}, false
	}
	if v2.Subtract(v1).Cross(point.Subtract(v1)).Dot(normal) < 0 {
		return HitRecord{}, false
	}
	if v0.Subtract(v2).Cross(point.Subtract(v2)).Dot(normal) < 0 {
		return HitRecord{}, false
	}

	if mode == AnyHit {
		return HitRecord{}, true
	}

	return HitRecord{
		DidHit:        true,
		Point:         point,
		Normal:        normal,
		MaterialIndex: materialIndex,
		T:             t,
	}, true
}

// culled applies the face culling rule for the given query mode
func culled(cullMode CullMode, mode HitMode, dotNormalDir float64) bool {
	if mode == AnyHit {
		dotNormalDir = -dotNormalDir
	}
	switch cullMode {
	case BackFaceCulling:
		return dotNormalDir > 0
	case FrontFaceCulling:
		return dotNormalDir < 0
	default:
		return false
	}
}
