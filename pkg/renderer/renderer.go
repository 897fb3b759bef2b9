package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// Renderer renders full frames of a scene into a FrameBuffer
type Renderer struct {
	config Config
}

// NewRenderer creates a renderer with config, zero fields defaulted
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config.WithDefaults()}
}

// Config returns the active configuration
func (r *Renderer) Config() Config {
	return r.config
}

// SetConfig replaces the configuration used by later frames
func (r *Renderer) SetConfig(config Config) {
	r.config = config.WithDefaults()
}

// Render writes every pixel of fb from the scene's current camera. The scene
// must not be modified until Render returns.
func (r *Renderer) Render(s *scene.Scene, fb *FrameBuffer) (FrameStats, error) {
	return Render(s, r.config, fb)
}

// Render renders one frame with config. It blocks until all workers finish.
func Render(s *scene.Scene, config Config, fb *FrameBuffer) (FrameStats, error) {
	if s == nil || s.Camera == nil {
		return FrameStats{}, fmt.Errorf("scene has no camera")
	}
	if err := fb.Validate(); err != nil {
		return FrameStats{}, err
	}
	config = config.WithDefaults()

	start := time.Now()
	f := newFrame(s, fb.Width, fb.Height, config)
	hits, workers, err := dispatch(f, fb, config.Workers, config.Partition, config.DynamicBatch)
	if err != nil {
		return FrameStats{}, fmt.Errorf("render frame: %w", err)
	}

	stats := FrameStats{
		Pixels:   len(fb.Pixels),
		Hits:     hits,
		Workers:  workers,
		Duration: time.Since(start),
	}
	config.Logger.Debug("frame rendered",
		"pixels", stats.Pixels,
		"hits", stats.Hits,
		"workers", stats.Workers,
		"mode", config.Mode.String(),
		"shadows", config.Shadows,
		"duration", stats.Duration)
	return stats, nil
}
