package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	cfg, help, err := parseFlags(os.Args[1:])
	if help {
		fmt.Println()
		fmt.Printf("Available scenes: %s\n", strings.Join(scene.Names(), ", "))
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.Default()
	filename, err := run(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	logger.Printf("Render saved as %s\n", filename)
}

// run renders the configured scene and writes it as a PNG
func run(ctx context.Context, cfg Config, logger core.Logger) (string, error) {
	img, err := render(ctx, cfg, logger)
	if err != nil {
		return "", err
	}

	filename := cfg.Output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", cfg.Scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := savePNG(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// render builds the scene and tracer from cfg and renders one image
func render(ctx context.Context, cfg Config, logger core.Logger) (*image.RGBA, error) {
	s, err := scene.Create(cfg.Scene, cfg.Attenuation)
	if err != nil {
		return nil, err
	}
	s.SetEpsilon(cfg.Tracer.Epsilon)

	logger.Printf("Using %s scene, max depth %d\n", s.Name, cfg.Tracer.MaxDepth)
	tracer := integrator.NewRayTracer(cfg.Tracer)
	raytracer := renderer.NewRaytracer(s, tracer, cfg.Render, logger)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", cfg.Scene, err)
	}
	logger.Printf("Traced %d primary rays for %d pixels\n", stats.TotalSamples, stats.TotalPixels)
	return img, nil
}

func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return file.Close()
}
