package ocr

import (
	"fmt"
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/specbug/texbridge/internal/imaging"
	"github.com/specbug/texbridge/internal/logging"
)

// Options is the opaque engine-options mapping from the settings file.
// Keys with dedicated handling:
//
//	language        - recognition language(s), e.g. "eng" or "eng+deu"
//	psm             - page segmentation mode, numeric (see Tesseract docs)
//	whitelist       - restrict recognition to the given characters
//	config_file     - Tesseract config file to apply
//	tessdata_prefix - directory holding .traineddata files
//
// All other keys are set verbatim as Tesseract variables.
type Options map[string]string

// Engine invokes Tesseract on a single image. Construct one per invocation
// with New; the zero value is not usable.
type Engine struct {
	options Options
}

// New creates an engine configured with the given pass-through options.
// A nil map is equivalent to no options.
func New(options Options) *Engine {
	if options == nil {
		options = Options{}
	}
	return &Engine{options: options}
}

// Recognize runs text recognition on img and returns the recognized string
// with surrounding whitespace trimmed.
//
// resizedShape is the longest-edge target size used while conditioning the
// input; zero or negative disables resizing. An image from which the engine
// extracts no text at all is an error.
func (e *Engine) Recognize(img image.Image, resizedShape int) (string, error) {
	prepared := Prepare(img, resizedShape)

	data, err := imaging.EncodePNG(prepared)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := e.configure(client); err != nil {
		return "", err
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognition failed: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("engine returned no text")
	}

	logging.Debugf("ocr: recognized %d characters", len(text))
	return text, nil
}

// configure applies the engine options to a fresh client. Keys are applied
// in sorted order so failures are deterministic.
func (e *Engine) configure(client *gosseract.Client) error {
	keys := make([]string, 0, len(e.options))
	for k := range e.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := e.options[key]
		var err error
		switch key {
		case "language":
			err = client.SetLanguage(strings.Split(value, "+")...)
		case "psm":
			var mode int
			mode, err = strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("engine option psm: %w", err)
			}
			err = client.SetPageSegMode(gosseract.PageSegMode(mode))
		case "whitelist":
			err = client.SetWhitelist(value)
		case "config_file":
			err = client.SetConfigFile(value)
		case "tessdata_prefix":
			err = client.SetTessdataPrefix(value)
		default:
			err = client.SetVariable(gosseract.SettableVariable(key), value)
		}
		if err != nil {
			return fmt.Errorf("engine option %s: %w", key, err)
		}
	}

	return nil
}

// Version returns the Tesseract version string.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
