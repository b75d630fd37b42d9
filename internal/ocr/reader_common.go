package ocr

import (
	"errors"
	"image"
	"strings"
)

// ErrUnavailable reports that the binary was built without cgo, so no
// Tesseract engine is linked in.
var ErrUnavailable = errors.New("ocr: tesseract support not compiled in (requires cgo)")

// plateWhitelist restricts recognition to the characters that occur on
// plates, which markedly reduces 0/O-style confusions.
const plateWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Reader recognizes single characters from classifier canvases.
//
// The zero value is not usable; construct with NewReader. A Reader is
// stateless between calls and safe for concurrent use: each read creates
// its own Tesseract client.
type Reader struct {
	language  string
	whitelist string
}

// NewReader creates a character reader using English training data and the
// plate alphabet whitelist.
func NewReader() *Reader {
	return &Reader{language: "eng", whitelist: plateWhitelist}
}

// ReadString recognizes an ordered sequence of character crops and joins
// the results into a single plate string. Crops Tesseract cannot read
// contribute nothing to the string; a read error aborts the sequence.
func (r *Reader) ReadString(crops []image.Image) (string, error) {
	var sb strings.Builder
	for _, crop := range crops {
		text, _, err := r.ReadCharacter(crop)
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
