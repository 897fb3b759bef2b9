package server

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

const (
	minImageSize = 1
	maxImageSize = 2000
)

// RenderRequest holds the parsed parameters of a one-shot render
type RenderRequest struct {
	Scene  string
	Width  int
	Height int
	Format export.Format
	Thumb  int // Longest side of the returned image, 0 for full size
	Config renderer.Config
}

// ExportResponse is returned by the export endpoint
type ExportResponse struct {
	Scene        string  `json:"scene"`
	Location     string  `json:"location"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Bytes        int     `json:"bytes"`
	RenderMs     int64   `json:"renderMs"`
	HitRatio     float64 `json:"hitRatio"`
	LightingMode string  `json:"lightingMode"`
}

// handleScenes lists the builtin scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.Available(scene.Options{AssetDir: s.config.AssetDir}))
}

// handleRender renders one frame and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r.URL.Query(), "")
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	img, stats, err := s.renderImage(r.Context(), req)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	data, err := export.EncodeBytes(export.Thumbnail(img, req.Thumb), req.Format)
	if err != nil {
		http.Error(w, "Failed to encode image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.Hits))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleExport renders the named scene and uploads it to the sink
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.sink == nil {
		http.Error(w, "Export storage is not configured", http.StatusServiceUnavailable)
		return
	}

	name := mux.Vars(r)["name"]
	req, err := s.parseRenderRequest(r.URL.Query(), name)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	img, stats, err := s.renderImage(r.Context(), req)
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	data, err := export.EncodeBytes(img, req.Format)
	if err != nil {
		http.Error(w, "Failed to encode image", http.StatusInternalServerError)
		return
	}

	location, err := s.sink.Put(r.Context(), export.ObjectName(req.Scene, req.Format), data, req.Format)
	if err != nil {
		s.logger.Error("export upload failed", "scene", req.Scene, "error", err)
		http.Error(w, "Upload failed", http.StatusBadGateway)
		return
	}

	s.logger.Info("scene exported", "scene", req.Scene, "location", location, "bytes", len(data))
	writeJSON(w, http.StatusCreated, ExportResponse{
		Scene:        req.Scene,
		Location:     location,
		Width:        req.Width,
		Height:       req.Height,
		Bytes:        len(data),
		RenderMs:     stats.Duration.Milliseconds(),
		HitRatio:     stats.HitRatio(),
		LightingMode: req.Config.Mode.String(),
	})
}

// renderImage builds a fresh scene and renders it, giving up waiting after
// the configured timeout. The frame itself always runs to completion.
func (s *Server) renderImage(ctx context.Context, req *RenderRequest) (image.Image, renderer.FrameStats, error) {
	sc, err := scene.New(req.Scene, scene.Options{AssetDir: s.config.AssetDir})
	if err != nil {
		return nil, renderer.FrameStats{}, err
	}

	if s.config.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RenderTimeout)
		defer cancel()
	}

	type result struct {
		fb    *renderer.FrameBuffer
		stats renderer.FrameStats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		fb := renderer.NewFrameBuffer(req.Width, req.Height)
		stats, err := renderer.Render(sc, req.Config, fb)
		done <- result{fb: fb, stats: stats, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.stats, res.err
		}
		return res.fb.Image(), res.stats, nil
	case <-ctx.Done():
		return nil, renderer.FrameStats{}, ctx.Err()
	}
}

func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Render timed out", http.StatusGatewayTimeout)
	case errors.Is(err, context.Canceled):
		// Client went away
	default:
		s.logger.Error("render failed", "error", err)
		http.Error(w, "Render failed", http.StatusInternalServerError)
	}
}

// parseRenderRequest reads scene, size and toggles from the query. A
// non-empty sceneName overrides the scene parameter.
func (s *Server) parseRenderRequest(values url.Values, sceneName string) (*RenderRequest, error) {
	req := &RenderRequest{Scene: sceneName, Config: s.renderConfig}
	if req.Scene == "" {
		req.Scene = values.Get("scene")
	}
	if req.Scene == "" {
		req.Scene = "spheres"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", s.config.Width, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", s.config.Height, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(values, "thumb", 0, 0, maxImageSize); err != nil {
		return nil, err
	}
	if req.Format, err = export.ParseFormat(values.Get("format")); err != nil {
		return nil, err
	}
	if mode := values.Get("mode"); mode != "" {
		if req.Config.Mode, err = renderer.ParseLightingMode(mode); err != nil {
			return nil, err
		}
	}
	if req.Config.Shadows, err = parseBoolParam(values, "shadows", req.Config.Shadows); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}
