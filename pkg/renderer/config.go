package renderer

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// LightingMode selects what a hit contributes per light
type LightingMode int

const (
	ObservedArea LightingMode = iota // Cosine term only
	Radiance                         // Incident radiance only
	BRDF                             // Material response only
	Combined                         // Radiance × BRDF × cosine
)

var lightingModeNames = [...]string{
	ObservedArea: "observed-area",
	Radiance:     "radiance",
	BRDF:         "brdf",
	Combined:     "combined",
}

// Next cycles ObservedArea → Radiance → BRDF → Combined → ObservedArea
func (m LightingMode) Next() LightingMode {
	return (m + 1) % LightingMode(len(lightingModeNames))
}

func (m LightingMode) String() string {
	if m < 0 || int(m) >= len(lightingModeNames) {
		return fmt.Sprintf("LightingMode(%d)", int(m))
	}
	return lightingModeNames[m]
}

// ParseLightingMode accepts the names printed by String, case-insensitively
func ParseLightingMode(name string) (LightingMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, modeName := range lightingModeNames {
		if modeName == name {
			return LightingMode(mode), nil
		}
	}
	return Combined, fmt.Errorf("unknown lighting mode %q", name)
}

// Partition selects how pixels are handed to workers
type Partition int

const (
	// PartitionStatic gives each worker one contiguous chunk. Sizes differ by
	// at most one pixel, with the extras on the lowest worker ids.
	PartitionStatic Partition = iota
	// PartitionDynamic lets workers pull DynamicBatch-sized runs from a shared
	// cursor until the frame is exhausted.
	PartitionDynamic
)

func (p Partition) String() string {
	switch p {
	case PartitionStatic:
		return "static"
	case PartitionDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Partition(%d)", int(p))
	}
}

// ParsePartition accepts "static" or "dynamic"
func ParsePartition(name string) (Partition, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "static", "":
		return PartitionStatic, nil
	case "dynamic":
		return PartitionDynamic, nil
	default:
		return PartitionStatic, fmt.Errorf("unknown partition %q", name)
	}
}

// DefaultShadowBias is how far shadow rays start off the surface along the normal
const DefaultShadowBias = 0.001

// DefaultDynamicBatch is the number of pixels claimed per dynamic work item
const DefaultDynamicBatch = 256

// Config holds the per-frame toggles. It is passed into every render call so
// a frame depends only on (scene, camera, config).
type Config struct {
	Shadows      bool
	Mode         LightingMode
	ShadowBias   float64   // Shadow ray origin offset along the normal; 0 uses DefaultShadowBias, negative disables
	Workers      int       // 0 uses runtime.NumCPU()
	Partition    Partition // How pixels are spread over workers
	DynamicBatch int       // Pixels per work item for PartitionDynamic
	Logger       *slog.Logger
}

// DefaultConfig returns Combined lighting with shadows on
func DefaultConfig() Config {
	return Config{
		Shadows:      true,
		Mode:         Combined,
		ShadowBias:   DefaultShadowBias,
		Workers:      runtime.NumCPU(),
		Partition:    PartitionStatic,
		DynamicBatch: DefaultDynamicBatch,
	}
}

// WithDefaults fills zero or invalid tunables with their defaults
func (c Config) WithDefaults() Config {
	if c.ShadowBias == 0 {
		c.ShadowBias = DefaultShadowBias
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.DynamicBatch <= 0 {
		c.DynamicBatch = DefaultDynamicBatch
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
