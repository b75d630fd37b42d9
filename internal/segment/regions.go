package segment

import (
	"image"

	"github.com/openlpr/plate-segmenter/internal/imaging"
)

// Fixed region-finding constants inherited from field tuning. They are
// properties of the capture setup, not per-plate tunables, so they stay out
// of Config.
const (
	// bilateralDiameter and the two sigmas drive the edge-preserving
	// smoothing pass before thresholding.
	bilateralDiameter   = 9
	bilateralSigmaColor = 75
	bilateralSigmaSpace = 75

	// cannyLow/cannyHigh are the hysteresis thresholds for edge detection
	// on the already-binary thresholded plate.
	cannyLow  = 100
	cannyHigh = 200

	// minContourPoints discards tiny specks before they become candidates.
	minContourPoints = 4

	// polarityStripWidth is the width of the central vertical strip sampled
	// to decide plate polarity, and polarityCutoff the mean luminance below
	// which the thresholded plate is inverted. Sampling only the center
	// keeps plate frames and border art out of the decision.
	polarityStripWidth = 100
	polarityCutoff     = 130
)

// ThresholdedPlate is the derived binary raster the pipeline crops letters
// from. Polarity is resolved exactly once, at region-finding time, and the
// same raster is reused by letter extraction.
type ThresholdedPlate struct {
	// Binary holds foreground glyphs after polarity resolution.
	Binary *image.Gray

	// Inverted records whether polarity resolution flipped the raster
	// (light plate with dark text).
	Inverted bool

	// MeanLuminance is the average pixel value of the final binary raster,
	// used by letter extraction to normalize crops of dark-background
	// plates.
	MeanLuminance float64
}

// findRegions thresholds the plate and extracts one candidate per contour.
//
// The plate is smoothed with a bilateral filter, adaptively thresholded
// with a block size of min(height, width)/4 rounded up to odd, and edge
// detected; every 8-connected edge contour contributes its bounding box as
// a candidate. An image with no contours yields an empty candidate set and
// a valid ThresholdedPlate.
func findRegions(gray *image.Gray) ([]RectCandidate, *ThresholdedPlate) {
	bounds := gray.Bounds()

	smoothed := imaging.Bilateral(gray, bilateralDiameter, bilateralSigmaColor, bilateralSigmaSpace)

	blockDim := min(bounds.Dy()/4, bounds.Dx()/4)
	if blockDim%2 != 1 {
		blockDim++
	}
	thresh := imaging.AdaptiveThreshold(smoothed, blockDim, 0)

	edges := imaging.CannyEdges(thresh, cannyLow, cannyHigh)

	var cands []RectCandidate
	for _, contour := range imaging.Contours(edges, minContourPoints) {
		box := contour.BoundingBox()
		cands = append(cands, NewRectCandidate(box.Min.X, box.Min.Y, box.Dx(), box.Dy()))
	}
	sortByX(cands)

	plate := &ThresholdedPlate{Binary: thresh}
	strip := imaging.CenterStrip(thresh.Bounds(), polarityStripWidth)
	if imaging.MeanLuminance(thresh, strip) < polarityCutoff {
		// Light plate with dark text: flip so glyphs read dark on light.
		plate.Binary = imaging.Invert(thresh)
		plate.Inverted = true
	}
	plate.MeanLuminance = imaging.MeanLuminance(plate.Binary, plate.Binary.Bounds())

	return cands, plate
}
