package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/df07/go-direct-raytracer/pkg/core"
	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

const (
	writeWait  = 10 * time.Second
	maxMsgSize = 4 * 1024
)

// Command is a client message on the live socket
type Command struct {
	Type  string  `json:"type"` // toggle_shadows, cycle_mode, move, rotate, fov
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Z     float64 `json:"z,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
	Yaw   float64 `json:"yaw,omitempty"`
	Delta float64 `json:"delta,omitempty"`
}

// FrameInfo precedes every binary frame as a text message
type FrameInfo struct {
	Type      string  `json:"type"` // "frame" or "error"
	SessionID string  `json:"sessionId"`
	Frame     int     `json:"frame"`
	Mode      string  `json:"mode"`
	Shadows   bool    `json:"shadows"`
	FOV       float64 `json:"fov"`
	RenderMs  float64 `json:"renderMs"`
	Hits      int     `json:"hits"`
	Error     string  `json:"error,omitempty"`
}

// liveSession owns one scene and renderer. Commands are applied and rendered
// one at a time on the reading goroutine, so the camera is never moved while a
// frame renders.
type liveSession struct {
	id       string
	scene    *scene.Scene
	renderer *renderer.Renderer
	fb       *renderer.FrameBuffer
	thumb    int
	frames   int
}

// apply mutates the session for cmd
func (ls *liveSession) apply(cmd Command) error {
	config := ls.renderer.Config()
	switch cmd.Type {
	case "toggle_shadows":
		config.Shadows = !config.Shadows
		ls.renderer.SetConfig(config)
	case "cycle_mode":
		config.Mode = config.Mode.Next()
		ls.renderer.SetConfig(config)
	case "move":
		ls.scene.Camera.Move(core.NewVec3(cmd.X, cmd.Y, cmd.Z))
	case "rotate":
		ls.scene.Camera.Rotate(cmd.Pitch, cmd.Yaw)
	case "fov":
		ls.scene.Camera.ChangeFOV(cmd.Delta)
	case "render":
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}
	return nil
}

// render draws the current state and returns its info and PNG bytes
func (ls *liveSession) render() (FrameInfo, []byte, error) {
	stats, err := ls.renderer.Render(ls.scene, ls.fb)
	if err != nil {
		return FrameInfo{}, nil, err
	}
	data, err := export.EncodeBytes(export.Thumbnail(ls.fb.Image(), ls.thumb), export.FormatPNG)
	if err != nil {
		return FrameInfo{}, nil, err
	}
	ls.frames++
	config := ls.renderer.Config()
	return FrameInfo{
		Type:      "frame",
		SessionID: ls.id,
		Frame:     ls.frames,
		Mode:      config.Mode.String(),
		Shadows:   config.Shadows,
		FOV:       ls.scene.Camera.FOVAngle,
		RenderMs:  float64(stats.Duration.Microseconds()) / 1000,
		Hits:      stats.Hits,
	}, data, nil
}

// handleLive upgrades to a websocket and streams a frame for the initial
// state and after every command
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	req, err := s.parseRenderRequest(r.URL.Query(), name)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	sc, err := scene.New(req.Scene, scene.Options{AssetDir: s.config.AssetDir})
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Error("websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(maxMsgSize)

	session := &liveSession{
		id:       uuid.New().String(),
		scene:    sc,
		renderer: renderer.NewRenderer(req.Config),
		fb:       renderer.NewFrameBuffer(req.Width, req.Height),
		thumb:    req.Thumb,
	}
	logger := s.logger.With("session", session.id, "scene", req.Scene)
	logger.Info("live session started")
	defer logger.Info("live session ended", "frames", session.frames)

	ctx := r.Context()
	if err := s.sendFrame(ctx, conn, session); err != nil {
		logger.Debug("write error", "error", err)
		return
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				logger.Debug("read error", "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			logger.Warn("invalid message", "error", err)
			if err := writeInfo(ctx, conn, FrameInfo{Type: "error", SessionID: session.id, Error: "invalid json"}); err != nil {
				return
			}
			continue
		}
		if err := session.apply(cmd); err != nil {
			if err := writeInfo(ctx, conn, FrameInfo{Type: "error", SessionID: session.id, Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := s.sendFrame(ctx, conn, session); err != nil {
			logger.Debug("write error", "error", err)
			return
		}
	}
}

func (s *Server) sendFrame(ctx context.Context, conn *websocket.Conn, session *liveSession) error {
	info, data, err := session.render()
	if err != nil {
		return errors.Join(err, writeInfo(ctx, conn, FrameInfo{Type: "error", SessionID: session.id, Error: err.Error()}))
	}
	if err := writeInfo(ctx, conn, info); err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageBinary, data)
}

func writeInfo(ctx context.Context, conn *websocket.Conn, info FrameInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
