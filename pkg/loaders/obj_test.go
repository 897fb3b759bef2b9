package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestParseOBJ(t *testing.T) {
	content := `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vn 0 0 1
vt 0 0
usemtl default
f 1/1/1 2/1/1 3/1/1 4/1/1
`
	data, err := ParseOBJ(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Failed to parse OBJ: %v", err)
	}
	verifySquare(t, data)
	if data.Normals != nil {
		t.Errorf("Expected normals to be left nil, got %v", data.Normals)
	}
}

func TestParseOBJ_IndexForms(t *testing.T) {
	tests := []struct {
		name     string
		face     string
		expected []int
	}{
		{"plain", "f 1 2 3", []int{0, 1, 2}},
		{"texture", "f 1/1 2/2 3/3", []int{0, 1, 2}},
		{"normal only", "f 1//1 2//1 3//1", []int{0, 1, 2}},
		{"negative", "f -3 -2 -1", []int{0, 1, 2}},
		{"reversed", "f 3 2 1", []int{2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "v 0 0 0\nv 1 0 0\nv 0 1 0\n" + tt.face + "\n"
			data, err := ParseOBJ(strings.NewReader(content))
			if err != nil {
				t.Fatalf("Failed to parse OBJ: %v", err)
			}
			if len(data.Indices) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, data.Indices)
			}
			for i := range tt.expected {
				if data.Indices[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, data.Indices)
					break
				}
			}
		})
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"face before vertices", "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadOBJ_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}

	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("Failed to load OBJ: %v", err)
	}
	if data.TriangleCount() != 1 || data.Positions[2] != core.NewVec3(0, 1, 0) {
		t.Errorf("Unexpected mesh data: %+v", data)
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
