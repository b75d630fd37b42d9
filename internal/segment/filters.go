package segment

import (
	"math"
	"sort"
)

// Stage-internal constants inherited from field tuning.
const (
	// minSplitHeight is the shortest box the breakup stage will keep;
	// anything shorter is residue from plate frames and screws.
	minSplitHeight = 20

	// homogeneousHeightSpread is the max-min height spread below which the
	// height outlier stage considers all candidates homogeneous and does
	// nothing.
	homogeneousHeightSpread = 5
)

// Stats carries the aggregate measurements derived while filtering. They
// drive later stages and are reported on the Result for diagnostics.
type Stats struct {
	// AvgCharHeight is the mean height of the candidates surviving the
	// statistics stage.
	AvgCharHeight int `json:"avg_char_height"`

	// AvgBoxWidth is the mean width of the candidates surviving the
	// statistics stage.
	AvgBoxWidth int `json:"avg_box_width"`

	// VerticalCenter is plateHeight/2. Characters are assumed vertically
	// centered on the plate; this is a domain constant, not derived from
	// the candidates.
	VerticalCenter int `json:"vertical_center"`

	// EligibleBoxAreaAvg is the mean area of the non-split survivors of the
	// breakup stage.
	EligibleBoxAreaAvg float64 `json:"eligible_box_area_avg"`
}

// analyzeRects is the statistics stage: it discards candidates whose height
// falls outside the configured character band or whose width is below the
// minimum, then discards merged/noise blobs wider than MaxBoxWidth, and
// derives averages from what remains.
//
// Zero counts are guarded as one, so a wipe-out yields zeroed averages
// rather than a division failure.
func analyzeRects(cands []RectCandidate, cfg Config, plateHeight int) ([]RectCandidate, Stats) {
	out := make([]RectCandidate, 0, len(cands))

	var heightSum, widthSum, count int
	for _, c := range cands {
		valid := c.Height >= cfg.MinCharHeight && c.Height <= cfg.MaxCharHeight &&
			c.Width >= cfg.MinCharWidth
		if !valid || c.Width > cfg.MaxBoxWidth {
			continue
		}
		heightSum += c.Height
		widthSum += c.Width
		count++
		out = append(out, c)
	}

	divisor := count
	if divisor == 0 {
		divisor = 1
	}
	stats := Stats{
		AvgCharHeight:  heightSum / divisor,
		AvgBoxWidth:    widthSum / divisor,
		VerticalCenter: plateHeight / 2,
	}

	sortByX(out)
	return out, stats
}

// filterByVerticalDeviation discards candidates whose top edge sits more
// than the configured deviation from the plate's vertical center.
func filterByVerticalDeviation(cands []RectCandidate, cfg Config, verticalCenter int) []RectCandidate {
	out := make([]RectCandidate, 0, len(cands))
	for _, c := range cands {
		dev := c.Y - verticalCenter
		if dev < 0 {
			dev = -dev
		}
		if dev <= cfg.VerticalDeviationPx {
			out = append(out, c)
		}
	}
	sortByX(out)
	return out
}

// breakupWideBoxes splits double-width blobs and discards extreme outliers.
//
// Boxes wider than 3x MaxAllowedCharWidth are noise and dropped outright,
// as are boxes shorter than minSplitHeight. A box wider than
// MaxAllowedCharWidth but within the noise bound is two touching characters
// sharing one contour: it is replaced by two equal-width halves sharing its
// Y and height, each with a freshly computed centroid and area.
//
// The returned average is the mean area of the non-split survivors,
// zero-count guarded, kept for area-based pruning.
func breakupWideBoxes(cands []RectCandidate, cfg Config) ([]RectCandidate, float64) {
	out := make([]RectCandidate, 0, len(cands))

	var areaSum, count int
	for _, c := range cands {
		if c.Width > 3*cfg.MaxAllowedCharWidth {
			continue
		}
		if c.Height < minSplitHeight {
			continue
		}
		if c.Width > cfg.MaxAllowedCharWidth {
			half := c.Width / 2
			out = append(out,
				NewRectCandidate(c.X, c.Y, half, c.Height),
				NewRectCandidate(c.X+half, c.Y, half, c.Height),
			)
			continue
		}
		areaSum += c.Area
		count++
		out = append(out, c)
	}

	if count == 0 {
		count = 1
	}
	sortByX(out)
	return out, float64(areaSum) / float64(count)
}

// dedupeByCentroid collapses candidates whose centroids nearly coincide.
//
// Nested contours of the same glyph (outer boundary plus counters, like the
// hole in "O") produce stacked boxes with almost identical centers of
// gravity. For every pair within the configured deltas on both axes, the
// later candidate is dropped and the earlier kept.
func dedupeByCentroid(cands []RectCandidate, cfg Config) []RectCandidate {
	out := cloneCandidates(cands)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); {
			if math.Abs(out[j].CenterX-out[i].CenterX) <= cfg.CogDedupDeltaX &&
				math.Abs(out[j].CenterY-out[i].CenterY) <= cfg.CogDedupDeltaY {
				out = append(out[:j], out[j+1:]...)
			} else {
				j++
			}
		}
	}
	sortByX(out)
	return out
}

// eliminateOverlaps removes the larger of any two adjacent-by-area
// candidates whose boxes intersect. The tighter box hugs the glyph; the
// larger one usually includes frame or a neighboring character.
func eliminateOverlaps(cands []RectCandidate) []RectCandidate {
	byArea := cloneCandidates(cands)
	sortByArea(byArea)

	for i := 0; i < len(byArea)-1; {
		a, b := byArea[i], byArea[i+1]
		if !a.Overlaps(b) {
			i++
			continue
		}
		if a.Area > b.Area {
			byArea = append(byArea[:i], byArea[i+1:]...)
		} else {
			byArea = append(byArea[:i+1], byArea[i+2:]...)
			i++
		}
	}

	sortByX(byArea)
	return byArea
}

// eliminateHeightOutliers drops candidates whose height deviates from the
// mean by more than the spread between the tallest candidate and the mean.
// When all heights sit within homogeneousHeightSpread of each other the
// stage is skipped entirely.
func eliminateHeightOutliers(cands []RectCandidate) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) == 0 {
		return out
	}

	minH, maxH := out[0].Height, out[0].Height
	var sum int
	for _, c := range out {
		if c.Height < minH {
			minH = c.Height
		}
		if c.Height > maxH {
			maxH = c.Height
		}
		sum += c.Height
	}
	if maxH-minH < homogeneousHeightSpread {
		return out
	}

	mean := float64(sum) / float64(len(out))
	allowed := float64(maxH) - mean

	kept := out[:0]
	for _, c := range out {
		if math.Abs(float64(c.Height)-mean) <= allowed {
			kept = append(kept, c)
		}
	}
	return kept
}

// limitToCenter trims the candidate set symmetrically until it holds at
// most maxChars entries.
//
// With an odd surplus, one candidate goes first from whichever end has the
// wider gap to its neighbor, since the tighter-packed end is more likely to
// be the genuine character run. After that, one candidate is dropped from
// each end per iteration.
func limitToCenter(cands []RectCandidate, maxChars int) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) <= maxChars {
		return out
	}

	if len(out)%2 == 1 {
		gapLeft := gapBetween(out[0], out[1])
		gapRight := gapBetween(out[len(out)-2], out[len(out)-1])
		if gapLeft < gapRight {
			out = out[:len(out)-1]
		} else {
			out = out[1:]
		}
	}

	for len(out) > maxChars && len(out) >= 2 {
		out = out[1 : len(out)-1]
	}
	return out
}

// sortByArea orders candidates by ascending area, stable on the incoming
// (ascending X) order so ties keep reading order.
func sortByArea(cands []RectCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Area < cands[j].Area
	})
}
