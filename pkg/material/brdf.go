package material

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Lambert returns the diffuse BRDF cd·kd/π
func Lambert(kd float64, cd core.Vec3) core.Vec3 {
	return cd.Multiply(kd / math.Pi)
}

// LambertColor is Lambert with a per-channel reflectance
func LambertColor(kd, cd core.Vec3) core.Vec3 {
	return cd.MultiplyVec(kd).Multiply(1.0 / math.Pi)
}

// Phong returns the specular lobe ks·max(0, r·v)^exp where r is l mirrored
// about n. l points to the light, v is the view ray direction.
func Phong(ks, exp float64, l, v, n core.Vec3) core.Vec3 {
	reflected := l.Reflect(n)
	cosAlpha := math.Max(0, reflected.Dot(v))
	value := ks * math.Pow(cosAlpha, exp)
	return core.NewVec3(value, value, value)
}

// FresnelSchlick approximates the Fresnel reflectance for half vector h and
// outgoing direction v given the base reflectivity f0
func FresnelSchlick(h, v, f0 core.Vec3) core.Vec3 {
	factor := math.Pow(1-math.Max(0, h.Dot(v)), 5)
	return f0.Add(core.NewVec3(1, 1, 1).Subtract(f0).Multiply(factor))
}

// NormalDistributionGGX is the Trowbridge-Reitz microfacet distribution with
// α = roughness²
func NormalDistributionGGX(n, h core.Vec3, roughness float64) float64 {
	alpha := roughness * roughness
	alpha2 := alpha * alpha
	nh := math.Max(0, n.Dot(h))
	denom := nh*nh*(alpha2-1) + 1
	return alpha2 / (math.Pi * denom * denom)
}

// GeometrySchlickGGX is the single-direction masking term with the direct
// lighting remap k = (α+1)²/8
func GeometrySchlickGGX(n, v core.Vec3, roughness float64) float64 {
	alpha := roughness * roughness
	k := (alpha + 1) * (alpha + 1) / 8
	nv := math.Max(0, n.Dot(v))
	return nv / (nv*(1-k) + k)
}

// GeometrySmith combines masking for the view and light directions
func GeometrySmith(n, v, l core.Vec3, roughness float64) float64 {
	return GeometrySchlickGGX(n, v, roughness) * GeometrySchlickGGX(n, l, roughness)
}
