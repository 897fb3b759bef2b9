package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
)

// dielectricF0 is the base reflectivity used for non-metals
const dielectricF0 = 0.04

// CookTorrance is a metalness/roughness microfacet material
type CookTorrance struct {
	Albedo    core.Vec3
	Metalness float64 // 0 = dielectric, 1 = metal
	Roughness float64 // 0 = smooth, 1 = rough
}

// NewCookTorrance creates a microfacet material. Metalness and roughness are
// clamped to [0,1].
func NewCookTorrance(albedo core.Vec3, metalness, roughness float64) *CookTorrance {
	return &CookTorrance{
		Albedo:    albedo,
		Metalness: min(max(metalness, 0), 1),
		Roughness: min(max(roughness, 0), 1),
	}
}

func (c *CookTorrance) Shade(hit geometry.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	n := hit.Normal
	v := viewDir.Negate()
	l := lightDir
	h := v.Add(l).Normalize()

	f0 := core.NewVec3(dielectricF0, dielectricF0, dielectricF0).Multiply(1 - c.Metalness).
		Add(c.Albedo.Multiply(c.Metalness))

	f := FresnelSchlick(h, v, f0)
	d := NormalDistributionGGX(n, h, c.Roughness)
	g := GeometrySmith(n, v, l, c.Roughness)

	var specular core.Vec3
	if denom := 4 * v.Dot(n) * l.Dot(n); denom > 0 {
		specular = f.Multiply(d * g / denom)
	}

	kd := core.NewVec3(1, 1, 1).Subtract(f).Multiply(1 - c.Metalness)
	result := LambertColor(kd, c.Albedo).Add(specular)
	if !result.IsFinite() {
		return core.Vec3{}
	}
	return result
}
