package ocr

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	dimaging "github.com/disintegration/imaging"

	"github.com/specbug/texbridge/internal/imaging"
	"github.com/specbug/texbridge/internal/logging"
)

// Prepare conditions an image for recognition: scale the longest edge to
// resizedShape (when positive), grayscale and sharpen, and binarize
// low-contrast captures.
//
// The conditioning is part of the engine contract - the resized-shape setting
// exists because Tesseract's accuracy on formula screenshots depends heavily
// on glyph size - and is not exposed as a standalone operation.
func Prepare(img image.Image, resizedShape int) image.Image {
	stats := imaging.Analyze(img)
	bounds := img.Bounds()
	logging.Debugf("ocr: input %dx%d, mean luminance %.2f, contrast %.2f",
		bounds.Dx(), bounds.Dy(), stats.MeanLuminance, stats.Contrast)

	out := img
	if resizedShape > 0 {
		if bounds.Dx() >= bounds.Dy() {
			out = dimaging.Resize(out, resizedShape, 0, dimaging.Lanczos)
		} else {
			out = dimaging.Resize(out, 0, resizedShape, dimaging.Lanczos)
		}
	}

	gray := dimaging.Grayscale(out)
	sharp := dimaging.Sharpen(gray, 1.1)

	if stats.LowContrast() {
		level := thresholdLevel(stats)
		logging.Debugf("ocr: low contrast capture, binarizing at %d", level)
		return segment.Threshold(sharp, level)
	}

	return sharp
}

// thresholdLevel picks a binarization cutoff just below the mean luminance,
// assuming dark ink on a lighter background.
func thresholdLevel(stats imaging.Stats) uint8 {
	level := int(stats.MeanLuminance*255) - 25
	if level < 64 {
		level = 64
	}
	if level > 200 {
		level = 200
	}
	return uint8(level)
}
