package segment

// middleInsertOffset is the gap left before each synthesized interior box.
const middleInsertOffset = 5

// discoverToLeft synthesizes speculative candidates to the left of the
// first detected character.
//
// Plates with decorative artwork on the left often lose their leading
// character to the background; when there is room for at least one more box
// of the first candidate's width plus the observed inter-character padding,
// boxes are projected leftward until the plate edge. Synthesized candidates
// carry weight zero; the downstream classifier rejects non-characters.
//
// The number of synthesized candidates is capped at MaxCharactersOnPlate.
func discoverToLeft(cands []RectCandidate, cfg Config) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) < 2 {
		return out
	}

	first, second := out[0], out[1]
	padding := second.X - first.Right()

	if first.X-first.Width >= 0 && first.Width > 0 {
		numRects := first.X / first.Width
		added := 0
		for i := 1; i < numRects && added < cfg.MaxCharactersOnPlate; i++ {
			nx := first.X - (i*first.Width + padding)
			if nx < 0 {
				break
			}
			out = append(out, NewRectCandidate(nx, first.Y, first.Width, first.Height))
			added++
		}
	}

	sortByX(out)
	return out
}

// discoverInMiddle fills interior gaps wider than the mean candidate width
// with as many mean-width boxes as fit.
//
// Each synthesized box starts middleInsertOffset pixels after the previous
// box's right edge and copies the left neighbor's Y and height. Total
// insertions across the stage are capped at MaxCharactersOnPlate.
func discoverInMiddle(cands []RectCandidate, cfg Config) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) < 2 {
		return out
	}

	var widthSum int
	for _, c := range out {
		widthSum += c.Width
	}
	meanWidth := widthSum / len(out)
	if meanWidth <= 0 {
		return out
	}

	existing := len(out)
	added := 0
	for i := 0; i < existing-1 && added < cfg.MaxCharactersOnPlate; i++ {
		cur, next := out[i], out[i+1]
		gap := gapBetween(cur, next)
		if gap <= meanWidth {
			continue
		}

		prevEnd := cur.Right()
		for n := gap / meanWidth; n > 0 && added < cfg.MaxCharactersOnPlate; n-- {
			nx := prevEnd + middleInsertOffset
			out = append(out, NewRectCandidate(nx, cur.Y, meanWidth, cur.Height))
			prevEnd = nx + meanWidth
			added++
		}
	}

	sortByX(out)
	return out
}

// discoverToRight mirrors discoverToLeft on the trailing end of the run,
// bounded by the plate's pixel width.
func discoverToRight(cands []RectCandidate, cfg Config, plateWidth int) []RectCandidate {
	out := cloneCandidates(cands)
	sortByX(out)
	if len(out) < 2 {
		return out
	}

	prev, last := out[len(out)-2], out[len(out)-1]
	padding := last.X - prev.Right()

	if last.Right()+padding < plateWidth && prev.Width > 0 {
		numRects := (plateWidth - last.Right()) / prev.Width
		added := 0
		for i := 0; i < numRects && added < cfg.MaxCharactersOnPlate; i++ {
			nx := last.Right() + i*last.Width + padding
			if nx >= plateWidth || nx+last.Width >= plateWidth {
				break
			}
			out = append(out, NewRectCandidate(nx, last.Y, last.Width, last.Height))
			added++
		}
	}

	sortByX(out)
	return out
}
