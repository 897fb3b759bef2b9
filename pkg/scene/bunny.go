package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/geometry"
	"github.com/df07/go-direct-raytracer/pkg/loaders"
	"github.com/df07/go-direct-raytracer/pkg/material"
)

// BunnyMeshFile is the mesh the bunny scene loads from Options.AssetDir
const BunnyMeshFile = "lowpoly_bunny.obj"

// NewBunnyScene creates the box room with a scaled, back-face culled bunny
// mesh standing on the floor
func NewBunnyScene(opts Options) (*Scene, error) {
	path := filepath.Join(opts.AssetDir, BunnyMeshFile)
	data, err := loaders.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bunny mesh: %w", err)
	}

	s := NewScene(NewCamera(core.NewVec3(0, 3, -9), 45))

	walls := s.AddMaterial(material.NewLambert(1, core.NewVec3(0.49, 0.57, 0.57)))
	bunny := s.AddMaterial(material.NewLambert(1, core.NewVec3(1, 1, 1)))

	addRoom(s, walls)

	mesh := s.AddMesh(data.Positions, data.Indices, data.Normals, bunny,
		&geometry.MeshOptions{CullMode: geometry.BackFaceCulling})
	mesh.Scale(core.NewVec3(2, 2, 2))
	mesh.UpdateTransforms()

	s.AddPointLight(core.NewVec3(0, 5, 5), core.NewVec3(1, 0.61, 0.45), 50)
	s.AddPointLight(core.NewVec3(-2.5, 5, -5), core.NewVec3(1, 0.8, 0.45), 70)
	s.AddPointLight(core.NewVec3(2.5, 2.5, -5), core.NewVec3(0.34, 0.47, 0.68), 50)

	return s, nil
}
