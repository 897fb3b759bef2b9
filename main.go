package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/config"
	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
	"github.com/df07/go-direct-raytracer/pkg/scene"
)

// options are the parsed command line settings
type options struct {
	Scene     string
	Width     int
	Height    int
	Format    export.Format
	OutputDir string
	AssetDir  string
	Render    renderer.Config
	Help      bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts, err := parseOptions(os.Args[1:], cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	if opts.Help {
		printHelp(os.Stdout, cfg)
		return
	}

	if _, err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// flagValues holds the flag targets of one FlagSet
type flagValues struct {
	scene     *string
	width     *int
	height    *int
	mode      *string
	shadows   *bool
	format    *string
	out       *string
	workers   *int
	partition *string
	help      *bool
}

func newFlagSet(cfg *config.Config, defaults renderer.Config) (*flag.FlagSet, *flagValues) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	v := &flagValues{
		scene:     fs.String("scene", "spheres", "Scene name (see the list below)"),
		width:     fs.Int("width", cfg.Width, "Image width in pixels"),
		height:    fs.Int("height", cfg.Height, "Image height in pixels"),
		mode:      fs.String("mode", defaults.Mode.String(), "Lighting mode: observed-area, radiance, brdf, combined"),
		shadows:   fs.Bool("shadows", defaults.Shadows, "Cast shadow rays"),
		format:    fs.String("format", "png", "Output format: png or bmp"),
		out:       fs.String("out", cfg.OutputDir, "Output directory"),
		workers:   fs.Int("workers", defaults.Workers, "Number of render workers"),
		partition: fs.String("partition", defaults.Partition.String(), "Pixel partition: static or dynamic"),
		help:      fs.Bool("help", false, "Show help information"),
	}
	return fs, v
}

// parseOptions reads flags on top of the environment defaults in cfg
func parseOptions(args []string, cfg *config.Config) (*options, error) {
	defaults, err := cfg.RenderConfig()
	if err != nil {
		return nil, err
	}

	fs, v := newFlagSet(cfg, defaults)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &options{
		Scene:     *v.scene,
		Width:     *v.width,
		Height:    *v.height,
		OutputDir: *v.out,
		AssetDir:  cfg.AssetDir,
		Render:    defaults,
		Help:      *v.help,
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}
	if opts.Format, err = export.ParseFormat(*v.format); err != nil {
		return nil, err
	}
	if opts.Render.Mode, err = renderer.ParseLightingMode(*v.mode); err != nil {
		return nil, err
	}
	if opts.Render.Partition, err = renderer.ParsePartition(*v.partition); err != nil {
		return nil, err
	}
	opts.Render.Shadows = *v.shadows
	opts.Render.Workers = *v.workers
	return opts, nil
}

func printHelp(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Direct Lighting Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	if defaults, err := cfg.RenderConfig(); err == nil {
		fs, _ := newFlagSet(cfg, defaults)
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.Available(scene.Options{AssetDir: cfg.AssetDir}) {
		fmt.Fprintf(w, "  %-13s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
}

// run renders one frame and saves it, returning the written path
func run(ctx context.Context, opts *options, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Starting Direct Lighting Raytracer...")

	selected, err := scene.New(opts.Scene, scene.Options{AssetDir: opts.AssetDir})
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Using %s scene (%d primitives, %d lights)...\n",
		opts.Scene, selected.GetPrimitiveCount(), len(selected.Lights))

	fb := renderer.NewFrameBuffer(opts.Width, opts.Height)
	stats, err := renderer.Render(selected, opts.Render, fb)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(w, "Render completed in %v (%d workers, %.0f px/s, %.1f%% hit)\n",
		stats.Duration, stats.Workers, stats.PixelsPerSecond(), stats.HitRatio()*100)

	data, err := export.EncodeBytes(fb.Image(), opts.Format)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	name := filepath.Join(opts.Scene, fmt.Sprintf("render_%s%s", timestamp, opts.Format.Extension()))
	location, err := export.FileSink{Dir: opts.OutputDir}.Put(ctx, name, data, opts.Format)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(w, "Render saved as %s\n", location)
	return location, nil
}
