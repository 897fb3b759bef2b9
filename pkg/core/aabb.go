package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return NewAABB(min, max)
}

// Hit runs the slab test: the per-axis entry/exit distances along the ray are
// intersected and the box is hit when the resulting interval is non-empty and
// not entirely behind the origin. The ray's own (TMin, TMax) is not consulted.
func (aabb AABB) Hit(ray Ray) bool {
	invX := 1.0 / ray.Direction.X
	invY := 1.0 / ray.Direction.Y
	invZ := 1.0 / ray.Direction.Z

	tx1 := (aabb.Min.X - ray.Origin.X) * invX
	tx2 := (aabb.Max.X - ray.Origin.X) * invX
	tMin := min(tx1, tx2)
	tMax := max(tx1, tx2)

	ty1 := (aabb.Min.Y - ray.Origin.Y) * invY
	ty2 := (aabb.Max.Y - ray.Origin.Y) * invY
	tMin = max(tMin, min(ty1, ty2))
	tMax = min(tMax, max(ty1, ty2))

	tz1 := (aabb.Min.Z - ray.Origin.Z) * invZ
	tz2 := (aabb.Max.Z - ray.Origin.Z) * invZ
	tMin = max(tMin, min(tz1, tz2))
	tMax = min(tMax, max(tz1, tz2))

	return tMax > 0 && tMax >= tMin
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Expand returns an AABB expanded by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
