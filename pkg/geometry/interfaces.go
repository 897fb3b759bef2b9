package geometry

import "github.com/df07/go-direct-raytracer/pkg/core"

// HitMode selects between a full closest-hit query and an existence-only
// any-hit query (shadow rays).
type HitMode int

const (
	ClosestHit HitMode = iota // Populate the hit record for the nearest intersection
	AnyHit                    // Only report whether an intersection exists
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	DidHit        bool      // Set only by closest-hit queries
	Point         core.Vec3 // Point of intersection
	Normal        core.Vec3 // Unit surface normal at intersection
	MaterialIndex int       // Index into the scene's materials table
	T             float64   // Parameter t along the ray
}

// Shape interface for objects that can be hit by rays.
// Hit is total: degenerate geometry and grazing rays report a miss.
// In AnyHit mode the returned record carries no data.
type Shape interface {
	Hit(ray core.Ray, mode HitMode) (HitRecord, bool)
}
