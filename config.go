package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Config is everything a command line render needs
type Config struct {
	Scene       string             `json:"scene"`
	Output      string             `json:"output,omitempty"` // PNG path; timestamped under output/<scene> when empty
	Render      renderer.Config    `json:"render"`
	Tracer      integrator.Config  `json:"tracer"`
	Attenuation lights.Attenuation `json:"attenuation"`
}

// DefaultConfig returns the settings used when no file or flag overrides them
func DefaultConfig() Config {
	render := renderer.DefaultConfig()
	render.Width = 400
	return Config{
		Scene:       "default",
		Render:      render,
		Tracer:      integrator.DefaultConfig(),
		Attenuation: lights.DefaultAttenuation(),
	}
}

// LoadConfig reads a JSON config file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section of the configuration
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("scene name is required")
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := c.Tracer.Validate(); err != nil {
		return fmt.Errorf("tracer config: %w", err)
	}
	if err := c.Attenuation.Validate(); err != nil {
		return fmt.Errorf("light config: %w", err)
	}
	return nil
}

// parseFlags builds the configuration from args. A -config file is applied
// first and explicitly set flags override it.
func parseFlags(args []string) (Config, bool, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	defaults := DefaultConfig()

	configPath := fs.String("config", "", "JSON config file")
	sceneName := fs.String("scene", defaults.Scene, "Built-in scene name")
	output := fs.String("out", "", "Output PNG path")
	width := fs.Int("width", defaults.Render.Width, "Image width in pixels")
	height := fs.Int("height", 0, "Image height in pixels; derived from the camera aspect ratio when 0")
	samples := fs.Int("samples", defaults.Render.SamplesPerPixel, "Primary rays per pixel, rounded up to a square grid")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	depth := fs.Int("depth", defaults.Tracer.MaxDepth, "Maximum reflection/refraction depth")
	threshold := fs.Float64("threshold", defaults.Tracer.Threshold, "Minimum ray weight for secondary rays (0 disables)")
	constant := fs.Float64("constant", defaults.Attenuation.Constant, "Point light constant attenuation")
	linear := fs.Float64("linear", defaults.Attenuation.Linear, "Point light linear attenuation")
	quadratic := fs.Float64("quadratic", defaults.Attenuation.Quadratic, "Point light quadratic attenuation")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return defaults, errors.Is(err, flag.ErrHelp), err
	}
	if *help {
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		return defaults, true, nil
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			return cfg, false, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "out":
			cfg.Output = *output
		case "width":
			cfg.Render.Width = *width
		case "height":
			cfg.Render.Height = *height
		case "samples":
			cfg.Render.SamplesPerPixel = *samples
		case "workers":
			cfg.Render.NumWorkers = *workers
		case "depth":
			cfg.Tracer.MaxDepth = *depth
		case "threshold":
			cfg.Tracer.Threshold = *threshold
		case "constant":
			cfg.Attenuation.Constant = *constant
		case "linear":
			cfg.Attenuation.Linear = *linear
		case "quadratic":
			cfg.Attenuation.Quadratic = *quadratic
		}
	})

	return cfg, false, cfg.Validate()
}
