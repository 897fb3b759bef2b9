package scene

import (
	"math"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box: red and green side walls,
// two rotated boxes and a light just below the ceiling
func NewCornellScene() *Scene {
	const boxSize = 555.0

	camera := NewCameraLookAt(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)
	s := NewScene(camera)

	white := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.12, 0.45, 0.15)))

	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), white)        // floor
	s.AddPlane(core.NewVec3(0, boxSize, 0), core.NewVec3(0, -1, 0), white) // ceiling
	s.AddPlane(core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -1), white) // back
	s.AddPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), red)          // left
	s.AddPlane(core.NewVec3(boxSize, 0, 0), core.NewVec3(-1, 0, 0), green) // right

	// Tall box, rotated 15 degrees
	tall := geometry.NewBoxMesh(core.Vec3{}, core.NewVec3(82.5, 165, 82.5), white, nil)
	tall.RotateY(15 * math.Pi / 180)
	tall.Translate(core.NewVec3(347.5, 165, 377.5))
	tall.UpdateTransforms()
	s.AddShape(tall)

	// Short box, rotated -18 degrees
	short := geometry.NewBoxMesh(core.Vec3{}, core.NewVec3(82.5, 82.5, 82.5), white, nil)
	short.RotateY(-18 * math.Pi / 180)
	short.Translate(core.NewVec3(212.5, 82.5, 147.5))
	short.UpdateTransforms()
	s.AddShape(short)

	s.AddPointLight(core.NewVec3(278, 540, 278), core.NewVec3(1, 0.95, 0.85), 400000)

	return s
}
