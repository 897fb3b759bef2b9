package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
)

// Server handles web requests for the direct lighting raytracer
type Server struct {
	config       *config.Config
	renderConfig renderer.Config
	sink         export.Sink // nil when no bucket is configured
	router       *mux.Router
	logger       *slog.Logger
}

// NewServer creates a server. sink may be nil, which disables exports.
func NewServer(cfg *config.Config, sink export.Sink, logger *slog.Logger) (*Server, error) {
	renderConfig, err := cfg.RenderConfig()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	renderConfig.Logger = logger

	s := &Server{
		config:       cfg,
		renderConfig: renderConfig,
		sink:         sink,
		logger:       logger,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/scenes", s.handleScenes).Methods("GET")
	r.HandleFunc("/api/render", s.handleRender).Methods("GET")
	r.HandleFunc("/api/scenes/{name}/export", s.handleExport).Methods("POST")
	r.HandleFunc("/ws/live/{name}", s.handleLive)

	if s.config.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.config.StaticDir))).Methods("GET")
	}
	return r
}

// ServeHTTP makes Server an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on the configured port until ctx is cancelled, then shuts down
// gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.config.RenderTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// logRequests logs method, path, status and latency for every request
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack passes the websocket upgrade through to the underlying writer
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return h.Hijack()
}

// Unwrap lets http.ResponseController reach the underlying writer
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("write json response", "error", err)
	}
}
