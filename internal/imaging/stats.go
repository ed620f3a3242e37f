package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stats summarizes the tonal distribution of an image.
type Stats struct {
	// MeanLuminance is the average HSL lightness across sampled pixels,
	// in [0, 1]. 0 is black, 1 is white.
	MeanLuminance float64

	// Contrast is the standard deviation of the sampled lightness values.
	// Formula screenshots (dark ink on a light background) typically score
	// well above 0.2; washed-out captures score near zero.
	Contrast float64
}

// LowContrast reports whether the image is likely to need binarization
// before OCR.
func (s Stats) LowContrast() bool {
	return s.Contrast < 0.15
}

// maxAnalyzeSamples bounds the per-axis sampling grid so Analyze stays cheap
// on large screenshots.
const maxAnalyzeSamples = 256

// Analyze computes luminance statistics for img by sampling a grid of at
// most maxAnalyzeSamples points per axis.
func Analyze(img image.Image) Stats {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return Stats{}
	}

	stepX := width / maxAnalyzeSamples
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / maxAnalyzeSamples
	if stepY < 1 {
		stepY = 1
	}

	var sum, sumSq float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel; treat as background white.
				c = colorful.Color{R: 1, G: 1, B: 1}
			}
			_, _, l := c.Hsl()
			sum += l
			sumSq += l * l
			n++
		}
	}

	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}

	return Stats{
		MeanLuminance: mean,
		Contrast:      math.Sqrt(variance),
	}
}
