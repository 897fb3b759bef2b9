package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a builtin scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	NeedsAssets bool   `json:"needsAssets"` // Loads a mesh from the asset directory
}

// Options carries inputs some scenes need at construction time
type Options struct {
	AssetDir string // Directory holding mesh files
}

type builder func(opts Options) (*Scene, error)

type entry struct {
	info   SceneInfo
	build  builder
	assets []string // Files the build reads from Options.AssetDir
}

var registry = map[string]entry{
	"spheres": {
		info: SceneInfo{
			ID:          "spheres",
			DisplayName: "Spheres",
			Description: "Six Lambert-Phong spheres inside a box of planes",
		},
		build: func(Options) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"materials": {
		info: SceneInfo{
			ID:          "materials",
			DisplayName: "Materials",
			Description: "Cook-Torrance metals and plastics with culled triangles",
		},
		build: func(Options) (*Scene, error) { return NewMaterialsScene(), nil },
	},
	"cornell": {
		info: SceneInfo{
			ID:          "cornell",
			DisplayName: "Cornell Box",
			Description: "Cornell box with two box meshes",
		},
		build: func(Options) (*Scene, error) { return NewCornellScene(), nil },
	},
	"trianglemesh": {
		info: SceneInfo{
			ID:          "trianglemesh",
			DisplayName: "Triangle Mesh",
			Description: "Transformed box and quad meshes",
		},
		build: func(Options) (*Scene, error) { return NewTriangleMeshScene(), nil },
	},
	"spheregrid": {
		info: SceneInfo{
			ID:          "spheregrid",
			DisplayName: "Sphere Grid",
			Description: "Grid of OKLCH-colored glossy spheres",
		},
		build: func(Options) (*Scene, error) { return NewSphereGridScene(10), nil },
	},
	"bunny": {
		info: SceneInfo{
			ID:          "bunny",
			DisplayName: "Bunny",
			Description: "Low poly bunny mesh loaded from the asset directory",
			NeedsAssets: true,
		},
		build:  NewBunnyScene,
		assets: []string{BunnyMeshFile},
	},
}

// Available lists the builtin scenes that can be built with opts, sorted by
// ID. Scenes whose asset files are missing from opts.AssetDir are left out.
func Available(opts Options) []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		if !e.hasAssets(opts) {
			continue
		}
		scenes = append(scenes, e.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

func (e entry) hasAssets(opts Options) bool {
	for _, name := range e.assets {
		info, err := os.Stat(filepath.Join(opts.AssetDir, name))
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// New builds a fresh instance of the named scene. Every call returns an
// independent scene, so callers may move its camera freely.
func New(name string, opts Options) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", name, err)
	}
	return s, nil
}
