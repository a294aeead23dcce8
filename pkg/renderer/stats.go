package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of primary rays traced
	SamplesPerPixel int           // Primary rays per pixel
	Tiles           int           // Number of tiles rendered
	Elapsed         time.Duration // Wall-clock render time
}

// merge adds the counters of a finished tile
func (rs *RenderStats) merge(tile RenderStats) {
	rs.TotalPixels += tile.TotalPixels
	rs.TotalSamples += tile.TotalSamples
	rs.Tiles++
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 0xffff
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy())
}
