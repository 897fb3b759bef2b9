package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// LoadSTL loads an ASCII or binary STL file. STL stores unindexed triangles,
// so shared corners are merged by exact position.
func LoadSTL(filename string) (*MeshData, error) {
	mesh, err := fauxgl.LoadSTL(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load STL file: %w", err)
	}
	return meshDataFromFauxgl(mesh), nil
}

func meshDataFromFauxgl(mesh *fauxgl.Mesh) *MeshData {
	data := &MeshData{
		Indices: make([]int, 0, len(mesh.Triangles)*3),
		Normals: make([]core.Vec3, 0, len(mesh.Triangles)),
	}
	lookup := make(map[fauxgl.Vector]int)

	for _, t := range mesh.Triangles {
		for _, v := range [3]fauxgl.Vertex{t.V1, t.V2, t.V3} {
			index, ok := lookup[v.Position]
			if !ok {
				index = len(data.Positions)
				lookup[v.Position] = index
				data.Positions = append(data.Positions, core.NewVec3(v.Position.X, v.Position.Y, v.Position.Z))
			}
			data.Indices = append(data.Indices, index)
		}
		n := t.Normal()
		data.Normals = append(data.Normals, core.NewVec3(n.X, n.Y, n.Z))
	}
	return data
}
