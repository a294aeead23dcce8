package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// Tile is a rectangular region of the image rendered as one unit of work
type Tile struct {
	ID     int
	Bounds image.Rectangle
}

// NewTiles splits a width x height image into tiles of at most tileSize pixels square
func NewTiles(width, height, tileSize int) []Tile {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}
	var tiles []Tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)),
			})
		}
	}
	return tiles
}

// TileRenderer renders tiles of an image with an integrator
type TileRenderer struct {
	scene           integrator.Scene
	integrator      integrator.Integrator
	width           int
	height          int
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer for a width x height image
func NewTileRenderer(scene integrator.Scene, integratorInst integrator.Integrator, width, height, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		scene:           scene,
		integrator:      integratorInst,
		width:           width,
		height:          height,
		samplesPerPixel: squareSamples(samplesPerPixel),
	}
}

// squareSamples rounds a sample count up to the next n x n grid
func squareSamples(samplesPerPixel int) int {
	if samplesPerPixel <= 1 {
		return 1
	}
	n := int(math.Ceil(math.Sqrt(float64(samplesPerPixel))))
	return n * n
}

// RenderTile traces every pixel inside bounds into img. Tiles never overlap,
// so concurrent calls on distinct tiles may share img.
func (tr *TileRenderer) RenderTile(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		SamplesPerPixel: tr.samplesPerPixel,
	}

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			img.SetRGBA(i, row, vec3ToColor(tr.samplePixel(i, row)))
			stats.TotalSamples += tr.samplesPerPixel
		}
	}
	return stats
}

// samplePixel averages a regular n x n grid of primary rays over the pixel.
// A single sample sits on the pixel's lower left corner.
func (tr *TileRenderer) samplePixel(i, row int) core.Vec3 {
	if tr.samplesPerPixel == 1 {
		x, y := PixelToImagePlane(i, row, tr.width, tr.height)
		return tr.integrator.Trace(tr.scene, x, y)
	}

	// Image rows run top-down; camera coordinates run bottom-up
	j := tr.height - 1 - row
	n := int(math.Sqrt(float64(tr.samplesPerPixel)))
	var accum core.Vec3
	for sy := 0; sy < n; sy++ {
		for sx := 0; sx < n; sx++ {
			x := (float64(i) + (float64(sx)+0.5)/float64(n)) / float64(tr.width)
			y := (float64(j) + (float64(sy)+0.5)/float64(n)) / float64(tr.height)
			accum = accum.Add(tr.integrator.Trace(tr.scene, x, y))
		}
	}
	return accum.Multiply(1.0 / float64(n*n))
}

// vec3ToColor quantizes a [0,1] color to 8 bits per channel
func vec3ToColor(c core.Vec3) color.RGBA {
	c = c.ClampColor()
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// PixelToImagePlane maps pixel (col, row), with row 0 at the top of the
// image, to the normalized camera coordinates the renderer traces for it
// with a single sample.
func PixelToImagePlane(col, row, width, height int) (float64, float64) {
	return float64(col) / float64(width), float64(height-1-row) / float64(height)
}
