package segment

// assignNeighborWeights scores every candidate by the length of the
// contiguous run it belongs to and keeps only the best-supported run.
//
// A candidate's weight is the count of neighbors, walking left and right,
// whose adjoining edges sit within NeighborGapMaxPx of each other. After
// weighting, every candidate scoring strictly below the maximum weight is
// dropped: isolated noise boxes far from the character run never
// accumulate neighbors, so the genuine run survives.
func assignNeighborWeights(cands []RectCandidate, cfg Config) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) == 0 {
		return out
	}

	highest := 0
	for i := range out {
		w := weightToLeft(out, out[i].X, i-1, cfg.NeighborGapMaxPx) +
			weightToRight(out, out[i].Right(), i+1, cfg.NeighborGapMaxPx)
		out[i].Weight = w
		if w > highest {
			highest = w
		}
	}

	kept := out[:0]
	for _, c := range out {
		if c.Weight >= highest {
			kept = append(kept, c)
		}
	}
	return kept
}

// weightToRight counts contiguous neighbors rightward from index i. The
// border is the right edge of the caller's box; each accepted neighbor
// extends the border to its own right edge.
func weightToRight(cands []RectCandidate, border, i, gapMax int) int {
	if i >= len(cands) {
		return 0
	}
	gap := cands[i].X - border
	if gap < 0 {
		gap = -gap
	}
	if gap > gapMax {
		return 0
	}
	return 1 + weightToRight(cands, cands[i].Right(), i+1, gapMax)
}

// weightToLeft counts contiguous neighbors leftward from index i. The
// border is the left edge of the caller's box.
func weightToLeft(cands []RectCandidate, border, i, gapMax int) int {
	if i < 0 {
		return 0
	}
	gap := cands[i].Right() - border
	if gap < 0 {
		gap = -gap
	}
	if gap > gapMax {
		return 0
	}
	return 1 + weightToLeft(cands, cands[i].X, i-1, gapMax)
}

// mergeOverlapping unions adjacent-by-X candidates whose intersection
// exceeds half the smaller box's area. Such pairs are two detections of the
// same glyph; the bounding union replaces both.
func mergeOverlapping(cands []RectCandidate) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) < 2 {
		return out
	}

	for i := 0; i < len(out)-1; {
		a, b := out[i], out[i+1]
		smaller := min(a.Area, b.Area)
		if smaller == 0 {
			smaller = 1
		}
		if float64(a.IntersectionArea(b)) > 0.5*float64(smaller) {
			merged := a.Union(b)
			out = append(out[:i], out[i+2:]...)
			out = append(out, merged)
		} else {
			i++
		}
	}

	sortByX(out)
	return out
}
