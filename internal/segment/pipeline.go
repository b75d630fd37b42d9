package segment

import (
	"fmt"
	"image"

	"github.com/openlpr/plate-segmenter/internal/imaging"
)

// Stage names, as reported to observers and used in debug dump filenames.
const (
	StageRegions           = "regions"
	StageAnalyzeRects      = "analyze-rects"
	StageVerticalDeviation = "y-deviation"
	StageBreakup           = "breakup"
	StageCentroidDedup     = "cog"
	StageOverlap           = "overlap"
	StageHeightOutliers    = "height"
	StageDiscoverLeft      = "discover-left"
	StageDiscoverMiddle    = "discover-middle"
	StageDiscoverRight     = "discover-right"
	StageLimit             = "limit"
	StageWeights           = "weights"
	StageMerge             = "merge"
	StageLetters           = "letters"

	// Raster dump names.
	RasterThreshold = "thresh"
	RasterCanvas    = "canvas"
	RasterMask      = "mask"
)

// Result is the outcome of one Segment invocation. Empty slices are a
// valid outcome for unreadable or blank plates.
type Result struct {
	// Candidates is the final candidate set in reading order.
	Candidates []RectCandidate `json:"candidates"`

	// Letters holds the classifier-ready crops, ordered by non-decreasing
	// source X. It may be shorter than Candidates: candidates too thin to
	// be characters are skipped.
	Letters []Letter `json:"letters"`

	// Stats reports the aggregate measurements the filters derived.
	Stats Stats `json:"stats"`

	// Inverted records whether plate polarity resolution flipped the
	// thresholded raster.
	Inverted bool `json:"inverted"`
}

// Segmenter runs the character-candidate extraction pipeline. It is
// immutable after construction and safe for concurrent use.
type Segmenter struct {
	cfg Config
	obs StageObserver
}

// Option customizes a Segmenter.
type Option func(*Segmenter)

// WithObserver installs a stage observer. Passing nil keeps the default
// no-op observer.
func WithObserver(obs StageObserver) Option {
	return func(s *Segmenter) {
		if obs != nil {
			s.obs = obs
		}
	}
}

// NewSegmenter validates the configuration and builds a pipeline.
func NewSegmenter(cfg Config, opts ...Option) (*Segmenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Segmenter{cfg: cfg, obs: NopObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the segmenter's configuration.
func (s *Segmenter) Config() Config { return s.cfg }

// Segment extracts ordered character crops from a cropped plate image.
//
// The image must be a decoded raster with positive dimensions; anything
// else fails fast with ErrInvalidInput. A plate where every stage
// eliminates all candidates returns an empty Result and a nil error;
// "nothing detected" is a legitimate outcome, not a failure.
func (s *Segmenter) Segment(img image.Image) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidInput, bounds)
	}

	gray := imaging.Grayscale(img)

	cands, plate := findRegions(gray)
	s.obs.ObserveRaster(RasterThreshold, plate.Binary)
	s.obs.ObserveStage(StageRegions, cands)

	result := &Result{Inverted: plate.Inverted}
	if len(cands) == 0 {
		return result, nil
	}

	cands, result.Stats = analyzeRects(cands, s.cfg, bounds.Dy())
	s.obs.ObserveStage(StageAnalyzeRects, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands = filterByVerticalDeviation(cands, s.cfg, result.Stats.VerticalCenter)
	s.obs.ObserveStage(StageVerticalDeviation, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands, result.Stats.EligibleBoxAreaAvg = breakupWideBoxes(cands, s.cfg)
	s.obs.ObserveStage(StageBreakup, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands = dedupeByCentroid(cands, s.cfg)
	s.obs.ObserveStage(StageCentroidDedup, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands = eliminateOverlaps(cands)
	s.obs.ObserveStage(StageOverlap, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands = eliminateHeightOutliers(cands)
	s.obs.ObserveStage(StageHeightOutliers, cands)
	if len(cands) == 0 {
		return result, nil
	}

	cands = discoverToLeft(cands, s.cfg)
	s.obs.ObserveStage(StageDiscoverLeft, cands)

	cands = discoverInMiddle(cands, s.cfg)
	s.obs.ObserveStage(StageDiscoverMiddle, cands)

	cands = discoverToRight(cands, s.cfg, bounds.Dx())
	s.obs.ObserveStage(StageDiscoverRight, cands)

	cands = limitToCenter(cands, s.cfg.MaxCharactersOnPlate)
	s.obs.ObserveStage(StageLimit, cands)
	if len(cands) == 0 {
		return result, nil
	}

	if s.cfg.EnableNeighborWeighting {
		cands = assignNeighborWeights(cands, s.cfg)
		s.obs.ObserveStage(StageWeights, cands)

		cands = mergeOverlapping(cands)
		s.obs.ObserveStage(StageMerge, cands)
		if len(cands) == 0 {
			return result, nil
		}
	}

	result.Candidates = cands

	art := extractLetters(cands, plate, s.cfg)
	result.Letters = art.Letters
	s.obs.ObserveRaster(RasterCanvas, art.Canvas)
	s.obs.ObserveRaster(RasterMask, art.Mask)
	s.obs.ObserveStage(StageLetters, cands)

	return result, nil
}
