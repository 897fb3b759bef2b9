package scene

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/lights"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// missingMaterial shades hits whose material index has no entry
var missingMaterial = material.NewSolidColor(core.NewVec3(1, 0, 1))

// Scene contains all the elements needed for rendering. It is read-only
// while a frame renders.
type Scene struct {
	Camera    *Camera
	Shapes    []geometry.Shape    // Objects in the scene
	Lights    []lights.Light      // Lights in the scene
	Materials []material.Material // Indexed by HitRecord.MaterialIndex
}

// NewScene creates an empty scene viewed from camera
func NewScene(camera *Camera) *Scene {
	if camera == nil {
		camera = NewCamera(core.Vec3{}, DefaultFOVAngle)
	}
	return &Scene{
		Camera:    camera,
		Shapes:    make([]geometry.Shape, 0),
		Lights:    make([]lights.Light, 0),
		Materials: make([]material.Material, 0),
	}
}

// AddMaterial appends m and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// Material returns the material at index, or a magenta placeholder when the
// index is out of range
func (s *Scene) Material(index int) material.Material {
	if index < 0 || index >= len(s.Materials) || s.Materials[index] == nil {
		return missingMaterial
	}
	return s.Materials[index]
}

// AddShape appends any intersectable shape
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddSphere adds a sphere and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialIndex int) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, materialIndex)
	s.AddShape(sphere)
	return sphere
}

// AddPlane adds an infinite plane and returns it
func (s *Scene) AddPlane(point, normal core.Vec3, materialIndex int) *geometry.Plane {
	plane := geometry.NewPlane(point, normal, materialIndex)
	s.AddShape(plane)
	return plane
}

// AddTriangle adds a single triangle and returns it
func (s *Scene) AddTriangle(v0, v1, v2 core.Vec3, cullMode geometry.CullMode, materialIndex int) *geometry.Triangle {
	triangle := geometry.NewTriangle(v0, v1, v2, cullMode, materialIndex)
	s.AddShape(triangle)
	return triangle
}

// AddMesh adds an indexed triangle mesh and returns it
func (s *Scene) AddMesh(positions []core.Vec3, indices []int, normals []core.Vec3, materialIndex int, options *geometry.MeshOptions) *geometry.TriangleMesh {
	mesh := geometry.NewTriangleMesh(positions, indices, normals, materialIndex, options)
	s.AddShape(mesh)
	return mesh
}

// AddPointLight adds a point light
func (s *Scene) AddPointLight(origin, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(origin, color, intensity))
}

// AddDirectionalLight adds a directional light
func (s *Scene) AddDirectionalLight(origin, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(origin, color, intensity))
}

// ClosestHit returns the nearest intersection over all shapes. Each hit
// narrows the ray's TMax so later shapes only report something closer.
func (s *Scene) ClosestHit(ray core.Ray) geometry.HitRecord {
	var closest geometry.HitRecord
	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray, geometry.ClosestHit); ok {
			closest = hit
			ray.TMax = hit.T
		}
	}
	return closest
}

// DoesHit reports whether any shape intersects ray within its range
func (s *Scene) DoesHit(ray core.Ray) bool {
	for _, shape := range s.Shapes {
		if _, ok := shape.Hit(ray, geometry.AnyHit); ok {
			return true
		}
	}
	return false
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		switch obj := shape.(type) {
		case *geometry.TriangleMesh:
			count += obj.GetTriangleCount()
		default:
			count++
		}
	}
	return count
}
