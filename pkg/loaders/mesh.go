package loaders

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions
var ErrUnsupportedFormat = errors.New("unsupported mesh format")

// MeshData holds an indexed triangle list ready for geometry.NewTriangleMesh
type MeshData struct {
	Positions []core.Vec3 // Vertex positions
	Indices   []int       // Three indices per triangle, zero-based
	Normals   []core.Vec3 // One face normal per triangle, or nil to derive from winding
}

// TriangleCount returns the number of triangles
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Load reads a mesh file, picking the parser from the extension
// (.obj, .ply or .stl)
func Load(path string) (*MeshData, error) {
	startTime := time.Now()

	var (
		data *MeshData
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		data, err = LoadOBJ(path)
	case ".ply":
		data, err = LoadPLY(path)
	case ".stl":
		data, err = LoadSTL(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded mesh",
		"path", path,
		"vertices", len(data.Positions),
		"triangles", data.TriangleCount(),
		"elapsed", time.Since(startTime))
	return data, nil
}

// appendFan triangulates a convex polygon as a fan around its first vertex
func appendFan(indices []int, polygon []int) []int {
	for k := 1; k+1 < len(polygon); k++ {
		indices = append(indices, polygon[0], polygon[k], polygon[k+1])
	}
	return indices
}
