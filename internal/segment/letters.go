package segment

import (
	"image"

	"github.com/openlpr/plate-segmenter/internal/imaging"
)

// Letter extraction constants inherited from field tuning.
const (
	// minWidthRatio is the fraction of MaxAllowedCharWidth below which a
	// candidate is too thin to be a real character and is skipped.
	minWidthRatio = 0.2

	// darkPlateCutoff is the mean binary-plate luminance below which crops
	// are inverted so glyphs always read dark on light.
	darkPlateCutoff = 125
)

// Letter pairs a surviving candidate with its classifier-ready crop.
type Letter struct {
	// Candidate is the source region in plate coordinates.
	Candidate RectCandidate `json:"candidate"`

	// Image is the character crop centered on a LetterCanvasSize square
	// white canvas.
	Image *image.NRGBA `json:"-"`
}

// letterArtifacts bundles the extraction outputs: the ordered letters plus
// the derived rasters handed to the debug observer.
type letterArtifacts struct {
	Letters []Letter

	// Canvas is the shared white working canvas all crops were pasted onto
	// at their plate positions, each with a one pixel separating border.
	Canvas *image.NRGBA

	// Mask marks the consumed source regions white.
	Mask *image.Gray
}

// extractLetters crops, polarity-normalizes, and canvas-pads the surviving
// candidates in reading order.
//
// Candidates thinner than minWidthRatio of MaxAllowedCharWidth are silently
// skipped, so the output may be shorter than the candidate set; order is
// preserved. Crops come from the thresholded plate, inverted first when its
// overall luminance marks a dark-background plate, so every emitted glyph
// is dark on light regardless of plate polarity.
func extractLetters(cands []RectCandidate, plate *ThresholdedPlate, cfg Config) letterArtifacts {
	bounds := plate.Binary.Bounds()

	source := plate.Binary
	if plate.MeanLuminance < darkPlateCutoff {
		source = imaging.Invert(plate.Binary)
	}

	art := letterArtifacts{
		Canvas: imaging.WhiteCanvas(bounds.Dx(), bounds.Dy()),
		Mask:   imaging.Grayscale(plate.Binary),
	}

	ordered := cloneCandidates(cands)
	sortByX(ordered)

	for _, c := range ordered {
		if float64(c.Width)/float64(cfg.MaxAllowedCharWidth) <= minWidthRatio {
			continue
		}

		region := c.Bounds().Intersect(bounds)
		if region.Empty() {
			continue
		}

		imaging.FillRect(art.Mask, region, 255)

		crop := imaging.CropGray(source, region)
		art.Canvas = imaging.PasteAt(art.Canvas, crop, region.Min)

		art.Letters = append(art.Letters, Letter{
			Candidate: c,
			Image:     imaging.CenterOnCanvas(crop, cfg.LetterCanvasSize, cfg.LetterPadding),
		})
	}
	return art
}
