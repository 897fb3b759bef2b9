package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize x gridSize grid of glossy spheres on
// a ground plane. Hue varies along X, chroma along Z.
func NewSphereGridScene(gridSize int) *Scene {
	gridSize = max(gridSize, 1)
	s := NewScene(NewCameraLookAt(core.NewVec3(4.5, 6, -9), core.NewVec3(4.5, 0.8, 4.5), 40))

	ground := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.5, 0.5, 0.5)))
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea
	if gridSize > 1 {
		spacing = targetArea / float64(gridSize-1)
	}
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25
	steps := float64(max(gridSize-1, 1))

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / steps) * 360.0
			chroma := minChroma + (float64(j)/steps)*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Vary the highlight a little across the grid
			exponent := 20.0 + 40.0*float64((i+j)%3)
			index := s.AddMaterial(material.NewLambertPhong(1, color, 0.5, exponent))
			s.AddSphere(position, sphereRadius, index)
		}
	}

	s.AddPointLight(core.NewVec3(4.5, 10, -2), core.NewVec3(1, 0.96, 0.9), 90)
	s.AddDirectionalLight(core.NewVec3(20, 25, 20), core.NewVec3(0.6, 0.7, 1.0), 0.3)

	return s
}
