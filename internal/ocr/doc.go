// Package ocr provides an optional Tesseract-backed reader for the
// character crops the segmentation pipeline produces.
//
// The production system hands crops to a dedicated character classifier;
// this package is a stand-in for offline inspection, letting the CLI print
// a plausible plate string without that service. It wraps the Tesseract
// engine (via gosseract/v2) configured for single-character page
// segmentation with a plate alphabet whitelist.
//
// # Build Requirements
//
// Tesseract recognition requires cgo and an installed Tesseract library
// with English training data:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Without cgo the package still compiles; NewReader succeeds and Read
// calls return ErrUnavailable, so the CLI degrades gracefully.
//
// # Accuracy
//
// Tesseract is not trained on plate fonts. Expect the stand-in to confuse
// the usual suspects (0/O, 1/I, 8/B); its output is indicative, not
// authoritative.
package ocr
