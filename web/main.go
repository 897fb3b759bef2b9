package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 0, "Port to serve on (overrides RAYTRACER_PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	var sink export.Sink
	if cfg.S3Enabled() {
		s3Sink, err := export.NewS3Sink(cfg.S3())
		if err != nil {
			logger.Error("create s3 sink", "error", err)
			os.Exit(1)
		}
		sink = s3Sink
		logger.Info("exports enabled", "bucket", cfg.S3Bucket)
	}

	webServer, err := server.NewServer(cfg, sink, logger)
	if err != nil {
		logger.Error("create server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("direct raytracer web server", "url", "http://localhost", "port", cfg.Port)
	if err := webServer.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
