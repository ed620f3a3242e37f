// Package ocr wraps the external recognition engine (Tesseract, via
// gosseract/v2) behind the small surface the bridge needs: construct an
// engine from opaque configuration options, hand it one image, get back the
// recognized text.
//
// # Engine options
//
// The engine is configured from a flat string mapping taken verbatim from the
// settings file. A handful of keys map onto dedicated gosseract setters
// (language, psm, whitelist, config_file, tessdata_prefix); every other key
// is passed through unmodified as a Tesseract variable, so new engine
// capabilities need no bridge changes.
//
// # Input conditioning
//
// Before recognition the image is scaled so its longest edge matches the
// configured resized shape, grayscaled and sharpened. Low-contrast captures
// are additionally binarized. See Prepare.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
package ocr
