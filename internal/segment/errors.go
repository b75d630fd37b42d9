package segment

import "errors"

var (
	// ErrInvalidInput reports a malformed plate raster: nil image or zero
	// dimensions. It is returned before any pipeline stage runs; a plate
	// where nothing is detected is an empty Result, not an error.
	ErrInvalidInput = errors.New("segment: invalid plate image")

	// ErrInvalidConfig reports a Config with non-positive thresholds or
	// canvas sizes, or an inverted character height band.
	ErrInvalidConfig = errors.New("segment: invalid configuration")
)
