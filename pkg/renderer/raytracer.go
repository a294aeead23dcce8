package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Config contains image and scheduling settings
type Config struct {
	Width           int `json:"width"`           // Image width in pixels
	Height          int `json:"height"`          // Image height; derived from the camera aspect ratio when zero
	SamplesPerPixel int `json:"samplesPerPixel"` // Primary rays per pixel
	TileSize        int `json:"tileSize"`        // Tile edge length in pixels
	NumWorkers      int `json:"numWorkers"`      // Parallel workers; NumCPU when zero
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           256,
		SamplesPerPixel: 1,
		TileSize:        32,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("height must be non-negative, got %d", c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.TileSize < 0 || c.NumWorkers < 0 {
		return fmt.Errorf("tile size and worker count must be non-negative")
	}
	return nil
}

// aspectRatioer is implemented by cameras that know their image plane shape
type aspectRatioer interface {
	AspectRatio() float64
}

// Raytracer renders a scene to an image
type Raytracer struct {
	scene      integrator.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A zero Height is derived from the
// camera aspect ratio.
func NewRaytracer(scene integrator.Scene, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.Height == 0 {
		config.Height = imageHeight(config.Width, scene.Camera())
	}
	return &Raytracer{
		scene:      scene,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// imageHeight returns width / aspect ratio rounded to the nearest pixel
func imageHeight(width int, camera core.Camera) int {
	aspect := 1.0
	if ar, ok := camera.(aspectRatioer); ok && ar.AspectRatio() > 0 {
		aspect = ar.AspectRatio()
	}
	return max(1, int(math.Floor(float64(width)/aspect+0.5)))
}

// Bounds returns the size of the image Render produces
func (rt *Raytracer) Bounds() image.Rectangle {
	return image.Rect(0, 0, rt.config.Width, rt.config.Height)
}

// Render traces every pixel in parallel. If ctx is cancelled the partially
// rendered image is returned with ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	img := image.NewRGBA(rt.Bounds())

	tiles := NewTiles(rt.config.Width, rt.config.Height, rt.config.TileSize)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, rt.config.NumWorkers, len(tiles))

	rt.logger.Printf("Rendering %dx%d in %d tiles with %d workers\n",
		rt.config.Width, rt.config.Height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Image: img})
	}
	pool.Stop()

	stats := RenderStats{SamplesPerPixel: tileRenderer.samplesPerPixel}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		rt.logger.Printf("Render stopped after %d of %d tiles: %v\n", stats.Tiles, len(tiles), renderErr)
		return img, stats, renderErr
	}
	rt.logger.Printf("Render completed in %v, average luminance %.3f\n", stats.Elapsed, CalculateAverageLuminance(img))
	return img, stats, nil
}
