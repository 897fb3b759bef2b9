package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/df07/go-direct-raytracer/pkg/export"
	"github.com/df07/go-direct-raytracer/pkg/renderer"
)

// Prefix is prepended to every variable, e.g. RAYTRACER_PORT
const Prefix = "RAYTRACER"

// Config is the process configuration shared by the CLI and the web server
type Config struct {
	Port          int           `envconfig:"PORT" default:"8080"`
	Width         int           `envconfig:"WIDTH" default:"400"`
	Height        int           `envconfig:"HEIGHT" default:"300"`
	Workers       int           `envconfig:"WORKERS" default:"0"`
	Shadows       bool          `envconfig:"SHADOWS" default:"true"`
	Mode          string        `envconfig:"MODE" default:"combined"`
	ShadowBias    float64       `envconfig:"SHADOW_BIAS" default:"0.001"`
	Partition     string        `envconfig:"PARTITION" default:"static"`
	RenderTimeout time.Duration `envconfig:"RENDER_TIMEOUT" default:"30s"`
	OutputDir     string        `envconfig:"OUTPUT_DIR" default:"output"`
	AssetDir      string        `envconfig:"ASSET_DIR" default:"assets"`
	StaticDir     string        `envconfig:"STATIC_DIR"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`

	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
	S3Prefix    string `envconfig:"S3_PREFIX" default:"renders"`
}

// Load reads the optional dotenv files, then the environment. Variables
// already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if _, err := cfg.RenderConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RenderConfig maps the environment settings to renderer toggles
func (c *Config) RenderConfig() (renderer.Config, error) {
	mode, err := renderer.ParseLightingMode(c.Mode)
	if err != nil {
		return renderer.Config{}, err
	}
	partition, err := renderer.ParsePartition(c.Partition)
	if err != nil {
		return renderer.Config{}, err
	}

	rc := renderer.DefaultConfig()
	rc.Shadows = c.Shadows
	rc.Mode = mode
	rc.ShadowBias = c.ShadowBias
	rc.Workers = c.Workers
	rc.Partition = partition
	return rc.WithDefaults(), nil
}

// S3 returns the bucket settings for export.NewS3Sink
func (c *Config) S3() export.S3Config {
	return export.S3Config{
		Bucket:    c.S3Bucket,
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Prefix:    c.S3Prefix,
	}
}

// S3Enabled reports whether a bucket is configured
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}
