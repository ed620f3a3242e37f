// Package imaging handles image decoding for the bridge and the luminance
// statistics used to judge capture quality.
//
// Images arrive either as a file path (PNG, JPEG, GIF, BMP, TIFF, WebP) or as
// raw bytes handed over by the system clipboard. Both paths produce a
// standard image.Image.
//
// Analyze computes mean luminance and contrast for a decoded image. The
// recognition engine uses these numbers to decide whether a capture needs
// binarization, and the bridge logs them for diagnosing poor recognitions.
package imaging
