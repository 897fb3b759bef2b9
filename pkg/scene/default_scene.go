package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// addRoom adds the five planes shared by the box scenes: floor at y=0,
// ceiling at y=10, walls at x=±5 and z=10. All normals face inward.
func addRoom(s *Scene, materialIndex int) {
	s.AddPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), materialIndex) // back
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), materialIndex)   // floor
	s.AddPlane(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), materialIndex) // ceiling
	s.AddPlane(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), materialIndex)  // right
	s.AddPlane(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), materialIndex)  // left
}

// NewDefaultScene creates six glossy spheres in a box lit by three point lights
func NewDefaultScene() *Scene {
	s := NewScene(NewCamera(core.NewVec3(0, 3, -9), 45))

	walls := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.49, 0.57, 0.57)))
	red := s.AddMaterial(material.NewLambertPhong(1, core.NewVec3(0.8, 0.1, 0.1), 0.5, 60))
	green := s.AddMaterial(material.NewLambertPhong(1, core.NewVec3(0.1, 0.7, 0.2), 0.5, 30))
	blue := s.AddMaterial(material.NewLambertPhong(1, core.NewVec3(0.1, 0.2, 0.8), 0.5, 10))
	white := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.9, 0.9, 0.9)))

	addRoom(s, walls)

	s.AddSphere(core.NewVec3(-1.75, 1, 0), 0.75, red)
	s.AddSphere(core.NewVec3(0, 1, 0), 0.75, green)
	s.AddSphere(core.NewVec3(1.75, 1, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(-1.75, 3, 0), 0.75, blue)
	s.AddSphere(core.NewVec3(0, 3, 0), 0.75, white)
	s.AddSphere(core.NewVec3(1.75, 3, 0), 0.75, red)

	s.AddPointLight(core.NewVec3(0, 5, 5), core.NewVec3(1, 0.61, 0.45), 50)
	s.AddPointLight(core.NewVec3(-2.5, 5, -5), core.NewVec3(1, 0.8, 0.45), 70)
	s.AddPointLight(core.NewVec3(2.5, 2.5, -5), core.NewVec3(0.34, 0.47, 0.68), 50)

	return s
}
