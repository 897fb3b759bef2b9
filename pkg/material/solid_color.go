package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
)

// SolidColor ignores lighting directions and always returns Color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a constant-color material
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Shade(hit geometry.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	return s.Color
}
