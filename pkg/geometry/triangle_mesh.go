package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// DefaultBoundsPadding is added to every side of a mesh's world-space box so
// that flat meshes still present a slab with thickness
const DefaultBoundsPadding = 1e-4

// MeshOptions contains optional parameters for triangle mesh creation
type MeshOptions struct {
	CullMode      CullMode
	BoundsPadding float64 // Per-axis AABB epsilon; 0 uses DefaultBoundsPadding, negative disables
}

// TriangleMesh is an indexed triangle list guarded by a single world-space
// bounding box. Rays that pass the box are tested against every triangle.
//
// The mesh keeps its source positions and normals; Translate, RotateY and
// Scale compose a model transform that UpdateTransforms bakes into the
// transformed arrays and the bounding box. None of these may run concurrently
// with Hit.
type TriangleMesh struct {
	Positions     []core.Vec3 // Source vertex positions
	Normals       []core.Vec3 // Source face normals, one per triangle
	Indices       []int       // Three indices per triangle
	CullMode      CullMode
	MaterialIndex int

	padding     float64
	translation mgl64.Mat4
	rotation    mgl64.Mat4
	scale       mgl64.Mat4

	indices              []int // Indices as of the last UpdateTransforms
	transformedPositions []core.Vec3
	transformedNormals   []core.Vec3
	bounds               core.AABB
	valid                bool
}

// NewTriangleMesh creates a mesh from positions, triangle indices and face
// normals. If normals is nil or does not hold one normal per triangle, they
// are derived from the winding order. A malformed index list (length not a
// multiple of 3, or indices out of range) yields a mesh that is never hit.
func NewTriangleMesh(positions []core.Vec3, indices []int, normals []core.Vec3, materialIndex int, options *MeshOptions) *TriangleMesh {
	m := &TriangleMesh{
		Positions:     positions,
		Indices:       indices,
		Normals:       normals,
		MaterialIndex: materialIndex,
		padding:       DefaultBoundsPadding,
		translation:   mgl64.Ident4(),
		rotation:      mgl64.Ident4(),
		scale:         mgl64.Ident4(),
	}

	if options != nil {
		m.CullMode = options.CullMode
		switch {
		case options.BoundsPadding > 0:
			m.padding = options.BoundsPadding
		case options.BoundsPadding < 0:
			m.padding = 0
		}
	}

	m.UpdateTransforms()
	return m
}

func validIndices(indices []int, vertexCount int) bool {
	if len(indices)%3 != 0 {
		return false
	}
	for _, index := range indices {
		if index < 0 || index >= vertexCount {
			return false
		}
	}
	return true
}

// CalculateNormals recomputes the source face normals from the positions
func (m *TriangleMesh) CalculateNormals() {
	if !validIndices(m.Indices, len(m.Positions)) {
		return
	}
	m.Normals = make([]core.Vec3, len(m.Indices)/3)
	for i := range m.Normals {
		p0 := m.Positions[m.Indices[i*3]]
		p1 := m.Positions[m.Indices[i*3+1]]
		p2 := m.Positions[m.Indices[i*3+2]]
		m.Normals[i] = p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()
	}
}

// Translate sets the translation part of the model transform
func (m *TriangleMesh) Translate(offset core.Vec3) {
	m.translation = mgl64.Translate3D(offset.X, offset.Y, offset.Z)
}

// RotateY sets the rotation part of the model transform (radians around +Y)
func (m *TriangleMesh) RotateY(yaw float64) {
	m.rotation = mgl64.HomogRotate3DY(yaw)
}

// Scale sets the scale part of the model transform
func (m *TriangleMesh) Scale(factors core.Vec3) {
	m.scale = mgl64.Scale3D(factors.X, factors.Y, factors.Z)
}

// UpdateTransforms applies scale, then rotation, then translation to the
// source data and refreshes the world-space bounding box. It revalidates the
// source arrays, so edits to Positions, Indices or Normals take effect here.
// Face normals are rederived when their count no longer matches the indices.
func (m *TriangleMesh) UpdateTransforms() {
	m.valid = validIndices(m.Indices, len(m.Positions))
	if !m.valid {
		m.indices = nil
		m.transformedPositions = nil
		m.transformedNormals = nil
		m.bounds = core.AABB{}
		return
	}
	if len(m.Normals) != len(m.Indices)/3 {
		m.CalculateNormals()
	}
	m.indices = append([]int(nil), m.Indices...)

	model := m.translation.Mul4(m.rotation).Mul4(m.scale)
	normalMatrix := model.Inv().Transpose()

	m.transformedPositions = make([]core.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		out := model.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
		m.transformedPositions[i] = core.NewVec3(out[0], out[1], out[2])
	}

	m.transformedNormals = make([]core.Vec3, len(m.Normals))
	for i, n := range m.Normals {
		out := normalMatrix.Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
		m.transformedNormals[i] = core.NewVec3(out[0], out[1], out[2]).Normalize()
	}

	m.bounds = core.NewAABBFromPoints(m.transformedPositions...).Expand(m.padding)
}

// Hit tests the ray against the bounding box, then every triangle
func (m *TriangleMesh) Hit(ray core.Ray, mode HitMode) (HitRecord, bool) {
	if !m.valid || !m.bounds.Hit(ray) {
		return HitRecord{}, false
	}

	var closest HitRecord
	hitAnything := false

	for i := 0; i < len(m.indices)/3; i++ {
		hit, ok := hitTriangle(
			m.transformedPositions[m.indices[i*3]],
			m.transformedPositions[m.indices[i*3+1]],
			m.transformedPositions[m.indices[i*3+2]],
			m.transformedNormals[i],
			m.CullMode, m.MaterialIndex, ray, mode)
		if !ok {
			continue
		}
		if mode == AnyHit {
			return HitRecord{}, true
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the world-space bounding box, padding included
func (m *TriangleMesh) BoundingBox() core.AABB {
	return m.bounds
}

// GetTriangleCount returns the number of triangles, 0 for a malformed mesh
func (m *TriangleMesh) GetTriangleCount() int {
	return len(m.indices) / 3
}

// IsValid reports whether the mesh was well formed at the last UpdateTransforms
func (m *TriangleMesh) IsValid() bool {
	return m.valid
}
