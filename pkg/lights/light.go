package lights

import "github.com/df07/go-direct-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is a point or directional light source.
//
// Both kinds are positioned at Origin. Point lights fall off with the square
// of the distance to Origin; directional lights deliver the same radiance
// everywhere.
type Light struct {
	Type      LightType
	Origin    core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a light that attenuates by inverse-square distance
func NewPointLight(origin, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      LightTypePoint,
		Origin:    origin,
		Color:     color,
		Intensity: intensity,
	}
}

// NewDirectionalLight creates a light with constant radiance
func NewDirectionalLight(origin, color core.Vec3, intensity float64) Light {
	return Light{
		Type:      LightTypeDirectional,
		Origin:    origin,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionToLight returns Origin - point, not normalized. Its length is the
// distance used to bound shadow rays.
func (l Light) DirectionToLight(point core.Vec3) core.Vec3 {
	return l.Origin.Subtract(point)
}

// Radiance returns the incident radiance at point
func (l Light) Radiance(point core.Vec3) core.Vec3 {
	emitted := l.Color.Multiply(l.Intensity)
	if l.Type != LightTypePoint {
		return emitted
	}
	return emitted.Divide(l.DirectionToLight(point).LengthSquared())
}
