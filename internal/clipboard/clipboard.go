// Package clipboard reads images from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"image"

	sysclip "golang.design/x/clipboard"

	"github.com/specbug/texbridge/internal/imaging"
	"github.com/specbug/texbridge/internal/logging"
)

// ErrNoImage is returned when the clipboard holds no image data. Its text is
// part of the bridge's JSON contract with the calling application.
var ErrNoImage = errors.New("No image found in clipboard")

// ReadImage returns the image currently on the system clipboard.
//
// It returns ErrNoImage when the clipboard is empty or holds non-image
// content. Other errors indicate the clipboard subsystem itself is
// unavailable (e.g. no display server).
func ReadImage() (image.Image, error) {
	if err := sysclip.Init(); err != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", err)
	}

	data := sysclip.Read(sysclip.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}

	img, format, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("clipboard image is not decodable: %w", err)
	}
	logging.Debugf("clipboard: decoded %s image, %d bytes", format, len(data))

	return img, nil
}
