package geometry

import "github.com/df07/go-direct-raytracer/pkg/core"

// NewQuadMesh creates a two-triangle mesh spanning corner, corner+u, corner+u+v
// and corner+v. The face normal is u × v.
func NewQuadMesh(corner, u, v core.Vec3, materialIndex int, options *MeshOptions) *TriangleMesh {
	positions := []core.Vec3{
		corner,
		corner.Add(u),
		corner.Add(u).Add(v),
		corner.Add(v),
	}
	indices := []int{
		0, 1, 2,
		0, 2, 3,
	}
	return NewTriangleMesh(positions, indices, nil, materialIndex, options)
}

// NewBoxMesh creates an axis-aligned box of 12 outward-facing triangles.
// halfSize holds the half-extents, so (1,1,1) is a 2x2x2 box.
func NewBoxMesh(center, halfSize core.Vec3, materialIndex int, options *MeshOptions) *TriangleMesh {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	positions := make([]core.Vec3, len(corners))
	for i, c := range corners {
		positions[i] = c.MultiplyVec(halfSize).Add(center)
	}

	indices := []int{
		0, 3, 2, 0, 2, 1, // back   (-Z)
		4, 5, 6, 4, 6, 7, // front  (+Z)
		0, 4, 7, 0, 7, 3, // left   (-X)
		1, 2, 6, 1, 6, 5, // right  (+X)
		0, 1, 5, 0, 5, 4, // bottom (-Y)
		3, 7, 6, 3, 6, 2, // top    (+Y)
	}

	return NewTriangleMesh(positions, indices, nil, materialIndex, options)
}
