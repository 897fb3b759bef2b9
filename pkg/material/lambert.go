package material

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
)

// LambertMaterial is a perfectly diffuse surface
type LambertMaterial struct {
	DiffuseReflectance float64
	DiffuseColor       core.Vec3
}

// NewLambert creates a diffuse material with reflectance kd and color cd
func NewLambert(kd float64, cd core.Vec3) *LambertMaterial {
	return &LambertMaterial{DiffuseReflectance: kd, DiffuseColor: cd}
}

func (l *LambertMaterial) Shade(hit geometry.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	return Lambert(l.DiffuseReflectance, l.DiffuseColor)
}

// LambertPhongMaterial adds a Phong highlight on top of a diffuse base
type LambertPhongMaterial struct {
	DiffuseReflectance  float64
	DiffuseColor        core.Vec3
	SpecularReflectance float64
	PhongExponent       float64
}

// NewLambertPhong creates a diffuse material with a Phong lobe of strength ks
func NewLambertPhong(kd float64, cd core.Vec3, ks, exponent float64) *LambertPhongMaterial {
	return &LambertPhongMaterial{
		DiffuseReflectance:  kd,
		DiffuseColor:        cd,
		SpecularReflectance: ks,
		PhongExponent:       exponent,
	}
}

func (l *LambertPhongMaterial) Shade(hit geometry.HitRecord, lightDir, viewDir core.Vec3) core.Vec3 {
	diffuse := Lambert(l.DiffuseReflectance, l.DiffuseColor)
	specular := Phong(l.SpecularReflectance, l.PhongExponent, lightDir, viewDir, hit.Normal)
	return diffuse.Add(specular)
}
