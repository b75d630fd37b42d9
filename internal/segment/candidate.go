package segment

import (
	"image"
	"sort"
)

// RectCandidate is a rectangular region hypothesized to contain one
// character, in plate-local pixel coordinates (top-left origin).
//
// CenterX/CenterY is the box centroid, used for duplicate detection.
// Weight is a neighbor-contiguity score assigned by the optional weighting
// stage; it is zero for freshly created and synthesized candidates.
// Candidates are value objects: stages never mutate them in place, they
// build new slices.
type RectCandidate struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`

	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	Weight int `json:"weight"`
	Area   int `json:"area"`
}

// NewRectCandidate builds a candidate from a bounding box, deriving the
// centroid and area.
func NewRectCandidate(x, y, width, height int) RectCandidate {
	return RectCandidate{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		CenterX: float64(x) + float64(width)/2,
		CenterY: float64(y) + float64(height)/2,
		Area:    width * height,
	}
}

// Right returns the exclusive right edge (X + Width).
func (c RectCandidate) Right() int { return c.X + c.Width }

// Bottom returns the exclusive bottom edge (Y + Height).
func (c RectCandidate) Bottom() int { return c.Y + c.Height }

// Bounds returns the candidate as an image.Rectangle.
func (c RectCandidate) Bounds() image.Rectangle {
	return image.Rect(c.X, c.Y, c.Right(), c.Bottom())
}

// Overlaps reports whether two candidate boxes intersect.
func (c RectCandidate) Overlaps(o RectCandidate) bool {
	return c.X < o.Right() && c.Right() > o.X &&
		c.Y < o.Bottom() && c.Bottom() > o.Y
}

// IntersectionArea returns the area of the overlap between two candidate
// boxes, or 0 when they do not intersect.
func (c RectCandidate) IntersectionArea(o RectCandidate) int {
	dx := min(c.Right(), o.Right()) - max(c.X, o.X)
	dy := min(c.Bottom(), o.Bottom()) - max(c.Y, o.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}

// Union returns the bounding union of two candidates as a fresh candidate
// with recomputed centroid and area and weight reset to zero.
func (c RectCandidate) Union(o RectCandidate) RectCandidate {
	x := min(c.X, o.X)
	y := min(c.Y, o.Y)
	right := max(c.Right(), o.Right())
	bottom := max(c.Bottom(), o.Bottom())
	return NewRectCandidate(x, y, right-x, bottom-y)
}

// gapBetween returns the horizontal distance between the right edge of a
// and the left edge of b.
func gapBetween(a, b RectCandidate) int {
	gap := b.X - a.Right()
	if gap < 0 {
		return -gap
	}
	return gap
}

// sortByX orders candidates by ascending X (reading order). Ties break on
// Y, then width, so equal inputs always produce equal orderings. Every
// stage applies this as its postcondition.
func sortByX(cands []RectCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].X != cands[j].X {
			return cands[i].X < cands[j].X
		}
		if cands[i].Y != cands[j].Y {
			return cands[i].Y < cands[j].Y
		}
		return cands[i].Width < cands[j].Width
	})
}

// cloneCandidates returns a copy of the slice; stages operate on copies so
// callers never observe partial mutation.
func cloneCandidates(cands []RectCandidate) []RectCandidate {
	return append([]RectCandidate(nil), cands...)
}
