// Package config loads the bridge settings file.
//
// The settings live in a small YAML mapping named config.yaml next to the
// texbridge binary. Loading is deliberately forgiving: a missing or malformed
// file silently yields the built-in defaults, because the calling desktop
// application treats configuration as optional tuning, never as a reason for
// a recognition request to fail.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/specbug/texbridge/internal/logging"
)

// DefaultResizedShape is the target size (longest edge, in pixels) used when
// the engine conditions its input image.
const DefaultResizedShape = 608

// FileName is the settings file expected beside the executable.
const FileName = "config.yaml"

// Config holds the two recognized settings.
//
// Engine is an opaque string mapping handed to the recognition engine without
// interpretation here; see ocr.Options for the keys the engine understands.
type Config struct {
	// Engine contains pass-through options for the Tesseract engine.
	Engine map[string]string `yaml:"tesseract"`

	// ResizedShape is the longest-edge target size used during engine-side
	// image conditioning. Zero or negative values disable resizing.
	ResizedShape int `yaml:"text_formula_resized_shape"`
}

// Default returns the built-in configuration: no engine options and a
// resized shape of 608.
func Default() Config {
	return Config{
		Engine:       map[string]string{},
		ResizedShape: DefaultResizedShape,
	}
}

// Load reads the configuration from path. Any failure - absent file,
// unreadable file, invalid YAML - falls back to Default without error.
// Fields omitted from the file keep their default values.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debugf("config: using defaults (%v)", err)
		return Default()
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logging.Debugf("config: %s is not valid YAML, using defaults (%v)", path, err)
		return Default()
	}

	// Unmarshal only touches keys present in the file, so omitted settings
	// keep their defaults. An explicit null engine mapping is normalized.
	if cfg.Engine == nil {
		cfg.Engine = map[string]string{}
	}

	return cfg
}

// DefaultPath returns the expected location of the settings file: FileName in
// the directory holding the running binary, with symlinks resolved so the
// file is found next to the real executable rather than a launcher link.
func DefaultPath() string {
	exePath, err := os.Executable()
	if err != nil {
		return FileName
	}
	if real, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = real
	}
	return filepath.Join(filepath.Dir(exePath), FileName)
}
