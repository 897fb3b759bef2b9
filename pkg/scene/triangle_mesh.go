package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a scene showcasing triangle mesh geometry: a
// rotated box, a tilted quad and a sphere for comparison on a ground plane
func NewTriangleMeshScene() *Scene {
	s := NewScene(NewCameraLookAt(core.NewVec3(0, 2, -6), core.NewVec3(0, 1, 0), 45))

	ground := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.8, 0.8, 0.8)))
	red := s.AddMaterial(material.NewLambertPhong(1, core.NewVec3(0.8, 0.2, 0.2), 0.4, 40))
	blue := s.AddMaterial(material.NewCookTorrance(core.NewVec3(0.2, 0.3, 0.8), 0, 0.4))
	gold := s.AddMaterial(material.NewCookTorrance(core.NewVec3(1.0, 0.78, 0.34), 1, 0.3))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)

	box := geometry.NewBoxMesh(core.Vec3{}, core.NewVec3(0.6, 0.6, 0.6), red,
		&geometry.MeshOptions{CullMode: geometry.BackFaceCulling})
	box.RotateY(math.Pi / 4)
	box.Translate(core.NewVec3(-1.6, 0.6, 0))
	box.UpdateTransforms()
	s.AddShape(box)

	quad := geometry.NewQuadMesh(
		core.NewVec3(-0.6, 0, 0.5),
		core.NewVec3(1.2, 0, 0),
		core.NewVec3(0, 1.5, 0),
		blue, nil)
	quad.RotateY(-math.Pi / 8)
	quad.UpdateTransforms()
	s.AddShape(quad)

	s.AddSphere(core.NewVec3(1.6, 0.7, 0), 0.7, gold)

	s.AddPointLight(core.NewVec3(0, 4, -3), core.NewVec3(1, 1, 1), 25)
	s.AddDirectionalLight(core.NewVec3(5, 10, -5), core.NewVec3(1, 0.95, 0.9), 0.6)

	return s
}
