package bridge

import (
	"fmt"
	"image"
	"log"
	"runtime/debug"

	"github.com/specbug/texbridge/internal/clipboard"
	"github.com/specbug/texbridge/internal/config"
	"github.com/specbug/texbridge/internal/imaging"
	"github.com/specbug/texbridge/internal/latex"
	"github.com/specbug/texbridge/internal/logging"
	"github.com/specbug/texbridge/internal/ocr"
)

// Bridge runs one recognition request. Zero value is not usable; construct
// with New.
type Bridge struct {
	configPath string
}

// New creates a bridge reading its settings from configPath. An empty path
// selects the default location beside the executable.
func New(configPath string) *Bridge {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	return &Bridge{configPath: configPath}
}

// Clipboard recognizes the image currently on the system clipboard.
//
// An empty clipboard yields the "No image found in clipboard" error result
// without loading configuration or touching the engine.
func (b *Bridge) Clipboard() *Result {
	return b.guarded(func() *Result {
		img, err := clipboard.ReadImage()
		if err != nil {
			return Failure(err)
		}
		return b.recognize(img)
	})
}

// File recognizes the image stored at path.
func (b *Bridge) File(path string) *Result {
	return b.guarded(func() *Result {
		img, format, err := imaging.Load(path)
		if err != nil {
			return Failure(err)
		}
		logging.Debugf("bridge: loaded %s image from %s", format, path)
		return b.recognize(img)
	})
}

// recognize is the shared tail of both commands: load settings, build the
// engine from them and run recognition on the acquired image.
func (b *Bridge) recognize(img image.Image) *Result {
	cfg := config.Load(b.configPath)

	engine := ocr.New(ocr.Options(cfg.Engine))
	text, err := engine.Recognize(img, cfg.ResizedShape)
	if err != nil {
		return Failure(err)
	}

	// Advisory only; an unparseable formula is still returned verbatim.
	if err := latex.Check(text); err != nil {
		log.Printf("warning: recognized formula may not render: %v", err)
	}

	return Success(text)
}

// guarded runs f and converts a panic into an error result carrying the
// panic message and a full stack trace.
func (b *Bridge) guarded(f func() *Result) (res *Result) {
	defer func() {
		if v := recover(); v != nil {
			stack := debug.Stack()
			log.Printf("panic during recognition: %v", v)
			res = &Result{
				Error:     fmt.Sprint(v),
				Traceback: string(stack),
			}
		}
	}()
	return f()
}
