package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// LoadOBJ loads the vertex positions and faces of a Wavefront OBJ file
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ reads "v" and "f" statements. Faces with more than three vertices
// are fan-triangulated; texture and normal references are ignored, and normals
// are left for the mesh to derive from winding order.
func ParseOBJ(r io.Reader) (*MeshData, error) {
	data := &MeshData{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			var coords [3]float64
			for i := range coords {
				value, err := strconv.ParseFloat(parts[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNumber, parts[i+1], err)
				}
				coords[i] = value
			}
			data.Positions = append(data.Positions, core.NewVec3(coords[0], coords[1], coords[2]))
		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNumber)
			}
			polygon := make([]int, 0, len(parts)-1)
			for _, token := range parts[1:] {
				index, err := parseOBJIndex(token, len(data.Positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				polygon = append(polygon, index)
			}
			data.Indices = appendFan(data.Indices, polygon)
		default:
			// vn, vt, o, g, s, usemtl, mtllib: nothing the tracer uses
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}
	return data, nil
}

// parseOBJIndex converts a face token ("7", "7/2", "7//3", "-1") to a
// zero-based position index
func parseOBJIndex(token string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		token = token[:slash]
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", token, err)
	}

	var index int
	switch {
	case value > 0:
		index = value - 1
	case value < 0:
		index = vertexCount + value
	default:
		return 0, fmt.Errorf("face index 0 is not valid")
	}

	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", value, vertexCount)
	}
	return index, nil
}
