//go:build !cgo

package ocr

import "image"

// ReadCharacter is the no-cgo stub; it always reports ErrUnavailable.
func (r *Reader) ReadCharacter(img image.Image) (string, float64, error) {
	return "", 0, ErrUnavailable
}
