package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
)

// Material turns a surface hit into reflected color for one light
type Material interface {
	// Shade returns the BRDF response at hit. lightDir points from the hit
	// toward the light, viewDir is the direction of the ray that produced the
	// hit (camera toward surface). Both are unit length.
	Shade(hit geometry.HitRecord, lightDir, viewDir core.Vec3) core.Vec3
}
