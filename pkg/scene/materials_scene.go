package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewMaterialsScene creates the Cook-Torrance reference scene: a row of
// metals over a row of plastics with decreasing roughness, and three
// triangles above them, one per cull mode
func NewMaterialsScene() *Scene {
	s := NewScene(NewCamera(core.NewVec3(0, 3, -9), 45))

	silver := core.NewVec3(0.972, 0.960, 0.915)
	plastic := core.NewVec3(0.75, 0.75, 0.75)

	roughMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 1))
	mediumMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.6))
	smoothMetal := s.AddMaterial(material.NewCookTorrance(silver, 1, 0.1))
	roughPlastic := s.AddMaterial(material.NewCookTorrance(plastic, 0, 1))
	mediumPlastic := s.AddMaterial(material.NewCookTorrance(plastic, 0, 0.6))
	smoothPlastic := s.AddMaterial(material.NewCookTorrance(plastic, 0, 0.1))
	walls := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.49, 0.57, 0.57)))
	white := s.AddMaterial(material.NewLambert(1, core.NewVec3(1, 1, 1)))

	addRoom(s, walls)

	s.AddSphere(core.NewVec3(-1.75, 1, 0), 0.75, roughMetal)
	s.AddSphere(core.NewVec3(0, 1, 0), 0.75, mediumMetal)
	s.AddSphere(core.NewVec3(1.75, 1, 0), 0.75, smoothMetal)
	s.AddSphere(core.NewVec3(-1.75, 3, 0), 0.75, roughPlastic)
	s.AddSphere(core.NewVec3(0, 3, 0), 0.75, mediumPlastic)
	s.AddSphere(core.NewVec3(1.75, 3, 0), 0.75, smoothPlastic)

	// Triangle facing the camera, shared by the three meshes
	positions := []core.Vec3{
		core.NewVec3(-0.75, 1.5, 0),
		core.NewVec3(0.75, 0, 0),
		core.NewVec3(-0.75, 0, 0),
	}
	cullModes := []geometry.CullMode{geometry.BackFaceCulling, geometry.FrontFaceCulling, geometry.NoCulling}
	for i, cullMode := range cullModes {
		mesh := s.AddMesh(positions, []int{0, 1, 2}, nil, white, &geometry.MeshOptions{CullMode: cullMode})
		mesh.Translate(core.NewVec3(-1.75+1.75*float64(i), 4.5, 0))
		mesh.RotateY(math.Pi / 4)
		mesh.UpdateTransforms()
	}

	s.AddPointLight(core.NewVec3(0, 5, 5), core.NewVec3(1, 0.61, 0.45), 50)
	s.AddPointLight(core.NewVec3(-2.5, 5, -5), core.NewVec3(1, 0.8, 0.45), 70)
	s.AddPointLight(core.NewVec3(2.5, 2.5, -5), core.NewVec3(0.34, 0.47, 0.68), 50)

	return s
}
