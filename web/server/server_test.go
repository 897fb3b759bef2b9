package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

func testConfig() *config.Config {
	return &config.Config{
		Width:         16,
		Height:        12,
		Shadows:       true,
		Mode:          "combined",
		ShadowBias:    0.001,
		Partition:     "static",
		RenderTimeout: 10 * time.Second,
	}
}

func newTestServer(t *testing.T, sink export.Sink) *Server {
	t.Helper()
	s, err := NewServer(testConfig(), sink, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

type memorySink struct {
	names []string
	data  [][]byte
	err   error
}

func (m *memorySink) Put(_ context.Context, name string, data []byte, format export.Format) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.names = append(m.names, name)
	m.data = append(m.data, data)
	return "mem://" + name, nil
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
}

func TestHandleScenes(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/scenes", nil))

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode scenes: %v", err)
	}
	available := scene.Available(scene.Options{AssetDir: s.config.AssetDir})
	if len(scenes) != len(available) {
		t.Errorf("Expected %d scenes, got %d", len(available), len(scenes))
	}
	for _, info := range scenes {
		if info.ID == "bunny" {
			t.Error("Expected bunny hidden without its mesh asset")
		}
	}
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name        string
		query       string
		status      int
		contentType string
		width       int
		height      int
	}{
		{"defaults", "", http.StatusOK, "image/png", 16, 12},
		{"sized", "?scene=cornell&width=20&height=10", http.StatusOK, "image/png", 20, 10},
		{"thumbnail", "?scene=spheres&width=40&height=20&thumb=10", http.StatusOK, "image/png", 10, 5},
		{"bmp", "?format=bmp&mode=radiance&shadows=false", http.StatusOK, "image/bmp", 0, 0},
		{"unknown scene", "?scene=nope", http.StatusNotFound, "", 0, 0},
		{"bad width", "?width=0", http.StatusBadRequest, "", 0, 0},
		{"bad mode", "?mode=spectral", http.StatusBadRequest, "", 0, 0},
		{"bad shadows", "?shadows=maybe", http.StatusBadRequest, "", 0, 0},
		{"bad format", "?format=gif", http.StatusBadRequest, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, httptest.NewRequest("GET", "/api/render"+tt.query, nil))

			if rec.Code != tt.status {
				t.Fatalf("Expected status %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Expected content type %s, got %s", tt.contentType, ct)
			}
			if tt.contentType != "image/png" {
				return
			}
			img, err := png.Decode(rec.Body)
			if err != nil {
				t.Fatalf("Failed to decode png: %v", err)
			}
			if img.Bounds().Dx() != tt.width || img.Bounds().Dy() != tt.height {
				t.Errorf("Expected %dx%d, got %v", tt.width, tt.height, img.Bounds())
			}
		})
	}
}

func TestHandleExport(t *testing.T) {
	t.Run("no sink", func(t *testing.T) {
		s := newTestServer(t, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest("POST", "/api/scenes/spheres/export", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected 503, got %d", rec.Code)
		}
	})

	t.Run("uploads", func(t *testing.T) {
		sink := &memorySink{}
		s := newTestServer(t, sink)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest("POST", "/api/scenes/cornell/export?format=bmp", nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(sink.names) != 1 || !strings.HasPrefix(sink.names[0], "cornell/") || !strings.HasSuffix(sink.names[0], ".bmp") {
			t.Fatalf("Unexpected uploads %v", sink.names)
		}

		var resp ExportResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		if resp.Location != "mem://"+sink.names[0] || resp.Bytes != len(sink.data[0]) {
			t.Errorf("Unexpected response %+v", resp)
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		s := newTestServer(t, &memorySink{err: errors.New("denied")})
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest("POST", "/api/scenes/spheres/export", nil))
		if rec.Code != http.StatusBadGateway {
			t.Errorf("Expected 502, got %d", rec.Code)
		}
	})

	t.Run("unknown scene", func(t *testing.T) {
		s := newTestServer(t, &memorySink{})
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest("POST", "/api/scenes/nope/export", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) FrameInfo {
	t.Helper()
	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Read info failed: %v", err)
	}
	if typ != websocket.MessageText {
		t.Fatalf("Expected text info message, got %v", typ)
	}
	var info FrameInfo
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatal(err)
	}
	if info.Type != "frame" {
		return info
	}

	typ, data, err = conn.Read(ctx)
	if err != nil {
		t.Fatalf("Read frame failed: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Fatalf("Expected binary frame, got %v", typ)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("Frame is not a png: %v", err)
	}
	return info
}

func sendCommand(t *testing.T, ctx context.Context, conn *websocket.Conn, cmd Command) {
	t.Helper()
	data, _ := json.Marshal(cmd)
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		t.Fatalf("Write command failed: %v", err)
	}
}

func TestHandleLive(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, nil))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/live/spheres?width=12&height=8"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	first := readFrame(t, ctx, conn)
	if first.Frame != 1 || first.Mode != "combined" || !first.Shadows || first.SessionID == "" {
		t.Fatalf("Unexpected initial frame %+v", first)
	}

	sendCommand(t, ctx, conn, Command{Type: "cycle_mode"})
	if info := readFrame(t, ctx, conn); info.Mode != "observed-area" || info.Frame != 2 {
		t.Errorf("Expected observed-area frame 2, got %+v", info)
	}

	sendCommand(t, ctx, conn, Command{Type: "toggle_shadows"})
	if info := readFrame(t, ctx, conn); info.Shadows {
		t.Errorf("Expected shadows off, got %+v", info)
	}

	sendCommand(t, ctx, conn, Command{Type: "fov", Delta: 10})
	if info := readFrame(t, ctx, conn); info.FOV != 55 {
		t.Errorf("Expected fov 55, got %+v", info)
	}

	sendCommand(t, ctx, conn, Command{Type: "move", Z: 1})
	sendCommand(t, ctx, conn, Command{Type: "rotate", Yaw: 0.1})
	readFrame(t, ctx, conn)
	if info := readFrame(t, ctx, conn); info.Frame != 6 {
		t.Errorf("Expected frame 6, got %+v", info)
	}

	sendCommand(t, ctx, conn, Command{Type: "teleport"})
	if info := readFrame(t, ctx, conn); info.Type != "error" || info.Error == "" {
		t.Errorf("Expected error message, got %+v", info)
	}
}

func TestHandleLive_UnknownScene(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t, nil))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ws/live/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestLiveSession_ApplyUpdatesRenderer(t *testing.T) {
	sc, err := scene.New("spheres", scene.Options{})
	if err != nil {
		t.Fatal(err)
	}
	session := &liveSession{
		scene:    sc,
		renderer: renderer.NewRenderer(renderer.Config{Mode: renderer.Combined, Shadows: true}),
		fb:       renderer.NewFrameBuffer(8, 6),
		thumb:    8,
	}

	for _, cmd := range []Command{{Type: "toggle_shadows"}, {Type: "cycle_mode"}} {
		if err := session.apply(cmd); err != nil {
			t.Fatalf("apply %s: %v", cmd.Type, err)
		}
	}
	rc := session.renderer.Config()
	if rc.Shadows || rc.Mode != renderer.ObservedArea {
		t.Errorf("Expected shadows off and observed-area, got %+v", rc)
	}

	info, data, err := session.render()
	if err != nil {
		t.Fatal(err)
	}
	if info.Shadows || info.Mode != "observed-area" || info.Frame != 1 || len(data) == 0 {
		t.Errorf("Unexpected frame %+v", info)
	}
}
