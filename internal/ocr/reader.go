//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ReadCharacter recognizes a single character crop.
//
// The image should be one classifier canvas from the segmentation
// pipeline: a dark glyph centered on a white square. Returns the
// recognized character (empty when Tesseract sees nothing) and a
// confidence in [0, 1]; confidence is 0 when symbol-level results are
// unavailable.
func (r *Reader) ReadCharacter(img image.Image) (string, float64, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", 0, fmt.Errorf("failed to encode crop: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.language); err != nil {
		return "", 0, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist(r.whitelist); err != nil {
		return "", 0, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_CHAR); err != nil {
		return "", 0, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("OCR failed: %w", err)
	}
	text = strings.TrimSpace(text)

	// Symbol-level confidence when available; text alone otherwise.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil || len(boxes) == 0 {
		return text, 0, nil
	}
	return text, float64(boxes[0].Confidence) / 100.0, nil
}
