package segment

import "fmt"

// Config carries every tunable of the segmentation pipeline. It is a plain
// value: construct one (usually from DefaultConfig or BroadConfig), adjust
// fields, and pass it to NewSegmenter. A Segmenter never mutates its
// Config, so one value can serve any number of concurrent invocations.
//
// YAML tags allow the CLI to load named tuning profiles from a file.
type Config struct {
	// MinCharHeight and MaxCharHeight bound the plausible pixel height of a
	// single character. Contour boxes outside this band are discarded
	// before any statistics are derived.
	MinCharHeight int `yaml:"min_char_height"`
	MaxCharHeight int `yaml:"max_char_height"`

	// MinCharWidth is the narrowest box still considered a character
	// fragment (thin glyphs like "1" or "I").
	MinCharWidth int `yaml:"min_char_width"`

	// MaxBoxWidth discards very wide boxes, such as the contour enclosing
	// the whole plate, so they cannot skew averages and centroids.
	MaxBoxWidth int `yaml:"max_box_width"`

	// MaxAllowedCharWidth is the widest box accepted as a single character.
	// Boxes wider than this but within 3x are split in two (two touching
	// characters sharing a contour); anything wider is noise.
	MaxAllowedCharWidth int `yaml:"max_allowed_char_width"`

	// VerticalDeviationPx is how far a candidate's top edge may sit from
	// the plate's vertical center before it is discarded.
	VerticalDeviationPx int `yaml:"vertical_deviation_px"`

	// CogDedupDeltaX and CogDedupDeltaY are the centroid distances within
	// which two candidates are considered duplicates of the same glyph.
	CogDedupDeltaX float64 `yaml:"cog_dedup_delta_x"`
	CogDedupDeltaY float64 `yaml:"cog_dedup_delta_y"`

	// NeighborGapMaxPx is the widest horizontal gap across which two
	// candidates still count as contiguous neighbors for weighting.
	NeighborGapMaxPx int `yaml:"neighbor_gap_max_px"`

	// MaxCharactersOnPlate limits the final candidate count; excess
	// candidates are trimmed symmetrically from both ends. It also caps
	// how many speculative candidates each gap-discovery pass may add.
	MaxCharactersOnPlate int `yaml:"max_characters_on_plate"`

	// LetterCanvasSize is the side of the square classifier canvas each
	// character crop is centered on.
	LetterCanvasSize int `yaml:"letter_canvas_size"`

	// LetterPadding is the minimum white margin kept around a crop on the
	// classifier canvas.
	LetterPadding int `yaml:"letter_padding"`

	// EnableNeighborWeighting switches on the contiguous-run weighting and
	// merge refinement between center limiting and letter extraction.
	EnableNeighborWeighting bool `yaml:"enable_neighbor_weighting"`

	// DebugDumpDir, when non-empty, is where the debug observer writes
	// per-stage overlay images. Empty disables dumping.
	DebugDumpDir string `yaml:"debug_dump_dir"`
}

// DefaultConfig returns the tuning for normal-aspect plates.
func DefaultConfig() Config {
	return Config{
		MinCharHeight:        34,
		MaxCharHeight:        58,
		MinCharWidth:         5,
		MaxBoxWidth:          80,
		MaxAllowedCharWidth:  40,
		VerticalDeviationPx:  30,
		CogDedupDeltaX:       10,
		CogDedupDeltaY:       10,
		NeighborGapMaxPx:     15,
		MaxCharactersOnPlate: 6,
		LetterCanvasSize:     96,
		LetterPadding:        6,
	}
}

// BroadConfig returns the tuning for broad (two-row aspect) plates, which
// tolerate more vertical spread around the center line.
func BroadConfig() Config {
	cfg := DefaultConfig()
	cfg.VerticalDeviationPx = 35
	return cfg
}

// Validate checks the configuration for values that would make the
// pipeline degenerate. All errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	positives := []struct {
		name  string
		value int
	}{
		{"min_char_height", c.MinCharHeight},
		{"max_char_height", c.MaxCharHeight},
		{"min_char_width", c.MinCharWidth},
		{"max_box_width", c.MaxBoxWidth},
		{"max_allowed_char_width", c.MaxAllowedCharWidth},
		{"vertical_deviation_px", c.VerticalDeviationPx},
		{"neighbor_gap_max_px", c.NeighborGapMaxPx},
		{"max_characters_on_plate", c.MaxCharactersOnPlate},
		{"letter_canvas_size", c.LetterCanvasSize},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}
	if c.CogDedupDeltaX <= 0 || c.CogDedupDeltaY <= 0 {
		return fmt.Errorf("%w: centroid dedup deltas must be positive", ErrInvalidConfig)
	}
	if c.LetterPadding < 0 {
		return fmt.Errorf("%w: letter_padding must not be negative, got %d", ErrInvalidConfig, c.LetterPadding)
	}
	if c.MinCharHeight > c.MaxCharHeight {
		return fmt.Errorf("%w: min_char_height %d exceeds max_char_height %d",
			ErrInvalidConfig, c.MinCharHeight, c.MaxCharHeight)
	}
	return nil
}
