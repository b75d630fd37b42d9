package segment

import (
	"testing"
)

// row builds n equal candidates of the given size spaced gap pixels apart,
// starting at startX, all on the same baseline.
func row(n, startX, y, width, height, gap int) []RectCandidate {
	cands := make([]RectCandidate, 0, n)
	x := startX
	for i := 0; i < n; i++ {
		cands = append(cands, NewRectCandidate(x, y, width, height))
		x += width + gap
	}
	return cands
}

func TestAnalyzeRects_HeightBand(t *testing.T) {
	cfg := DefaultConfig()
	cands := []RectCandidate{
		NewRectCandidate(0, 30, 20, 40),  // valid
		NewRectCandidate(30, 30, 20, 20), // too short
		NewRectCandidate(60, 30, 20, 70), // too tall
		NewRectCandidate(90, 30, 3, 40),  // too narrow
		NewRectCandidate(120, 30, 90, 40), // wider than MaxBoxWidth
		NewRectCandidate(150, 30, 24, 50), // valid
	}

	out, stats := analyzeRects(cands, cfg, 100)

	if len(out) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(out))
	}
	if out[0].X != 0 || out[1].X != 150 {
		t.Errorf("unexpected survivors: %+v", out)
	}
	if stats.AvgCharHeight != 45 {
		t.Errorf("avg height = %d, want 45", stats.AvgCharHeight)
	}
	if stats.AvgBoxWidth != 22 {
		t.Errorf("avg width = %d, want 22", stats.AvgBoxWidth)
	}
	if stats.VerticalCenter != 50 {
		t.Errorf("vertical center = %d, want 50", stats.VerticalCenter)
	}
}

func TestAnalyzeRects_WipeoutYieldsZeroedStats(t *testing.T) {
	cfg := DefaultConfig()
	cands := []RectCandidate{NewRectCandidate(0, 0, 20, 10)} // too short

	out, stats := analyzeRects(cands, cfg, 80)
	if len(out) != 0 {
		t.Fatalf("kept %d candidates, want 0", len(out))
	}
	if stats.AvgCharHeight != 0 || stats.AvgBoxWidth != 0 {
		t.Errorf("averages should be zero, got %+v", stats)
	}
	if stats.VerticalCenter != 40 {
		t.Errorf("vertical center = %d, want 40", stats.VerticalCenter)
	}
}

func TestFilterByVerticalDeviation(t *testing.T) {
	cfg := DefaultConfig()
	cands := []RectCandidate{
		NewRectCandidate(0, 50, 20, 40),  // on center
		NewRectCandidate(30, 25, 20, 40), // within 30
		NewRectCandidate(60, 10, 20, 40), // 40 off, dropped
		NewRectCandidate(90, 85, 20, 40), // 35 off, dropped
	}

	out := filterByVerticalDeviation(cands, cfg, 50)
	if len(out) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(out))
	}
	if out[0].X != 0 || out[1].X != 30 {
		t.Errorf("unexpected survivors: %+v", out)
	}
}

func TestBreakupWideBoxes_SplitsDoubleWidth(t *testing.T) {
	cfg := DefaultConfig() // MaxAllowedCharWidth 40

	cands := []RectCandidate{NewRectCandidate(10, 30, 100, 40)} // 2.5x the max
	out, _ := breakupWideBoxes(cands, cfg)

	if len(out) != 2 {
		t.Fatalf("split produced %d boxes, want 2", len(out))
	}
	if out[0].X != 10 || out[0].Width != 50 {
		t.Errorf("left half = %+v, want X=10 Width=50", out[0])
	}
	if out[1].X != 60 || out[1].Width != 50 {
		t.Errorf("right half = %+v, want X=60 Width=50", out[1])
	}
	if out[0].Y != 30 || out[0].Height != 40 || out[1].Height != 40 {
		t.Errorf("halves must keep the source row: %+v", out)
	}
}

func TestBreakupWideBoxes_DropsNoiseAndShorts(t *testing.T) {
	cfg := DefaultConfig()
	cands := []RectCandidate{
		NewRectCandidate(0, 30, 130, 40), // beyond 3x max width
		NewRectCandidate(50, 30, 20, 15), // shorter than the split minimum
		NewRectCandidate(80, 30, 20, 40), // kept as-is
	}

	out, avg := breakupWideBoxes(cands, cfg)
	if len(out) != 1 {
		t.Fatalf("kept %d boxes, want 1", len(out))
	}
	if out[0].X != 80 {
		t.Errorf("unexpected survivor: %+v", out[0])
	}
	if avg != 800 {
		t.Errorf("eligible area average = %v, want 800", avg)
	}
}

func TestBreakupWideBoxes_WipeoutAverage(t *testing.T) {
	cfg := DefaultConfig()
	out, avg := breakupWideBoxes(nil, cfg)
	if len(out) != 0 || avg != 0 {
		t.Errorf("empty input should yield empty output and zero average, got %d/%v", len(out), avg)
	}
}

func TestDedupeByCentroid_KeepsEarlier(t *testing.T) {
	cfg := DefaultConfig()
	a := NewRectCandidate(0, 0, 20, 40)
	b := NewRectCandidate(2, 2, 20, 40) // centroid 2px away on both axes
	c := NewRectCandidate(60, 0, 20, 40)

	out := dedupeByCentroid([]RectCandidate{a, b, c}, cfg)
	if len(out) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(out))
	}
	if out[0].X != 0 {
		t.Errorf("the earlier duplicate should survive, got X = %d", out[0].X)
	}
	if out[1].X != 60 {
		t.Errorf("distinct candidate lost: %+v", out)
	}
}

func TestDedupeByCentroid_DistantCentroidsKept(t *testing.T) {
	cfg := DefaultConfig()
	// Same Y centroid, X centroids 15 apart, beyond the 10px delta.
	cands := []RectCandidate{
		NewRectCandidate(0, 0, 20, 40),
		NewRectCandidate(15, 0, 20, 40),
	}
	if out := dedupeByCentroid(cands, cfg); len(out) != 2 {
		t.Errorf("kept %d candidates, want 2", len(out))
	}
}

func TestEliminateOverlaps_KeepsTighterBox(t *testing.T) {
	small := NewRectCandidate(10, 10, 20, 40)
	big := NewRectCandidate(5, 5, 60, 50) // envelops small
	clear := NewRectCandidate(100, 10, 60, 55)

	out := eliminateOverlaps([]RectCandidate{big, small, clear})
	if len(out) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(out))
	}
	if out[0] != small {
		t.Errorf("the tighter box should survive, got %+v", out[0])
	}
	if out[1] != clear {
		t.Errorf("non-overlapping box lost: %+v", out)
	}
}

func TestEliminateOverlaps_NoOverlapsRemain(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(0, 10, 30, 40),
		NewRectCandidate(20, 10, 30, 40),
		NewRectCandidate(40, 10, 30, 40),
		NewRectCandidate(100, 10, 20, 40),
	}

	out := eliminateOverlaps(cands)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[i].Overlaps(out[j]) {
				t.Errorf("candidates %d and %d still overlap: %+v / %+v", i, j, out[i], out[j])
			}
		}
	}
}

func TestEliminateHeightOutliers_DropsShortBox(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(0, 30, 20, 50),
		NewRectCandidate(30, 30, 20, 50),
		NewRectCandidate(60, 30, 20, 50),
		NewRectCandidate(90, 60, 20, 20), // screw head residue
	}

	out := eliminateHeightOutliers(cands)
	if len(out) != 3 {
		t.Fatalf("kept %d candidates, want 3", len(out))
	}
	for _, c := range out {
		if c.Height != 50 {
			t.Errorf("outlier survived: %+v", c)
		}
	}
}

func TestEliminateHeightOutliers_HomogeneousSkipped(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(0, 30, 20, 40),
		NewRectCandidate(30, 30, 20, 42),
		NewRectCandidate(60, 30, 20, 44),
	}
	if out := eliminateHeightOutliers(cands); len(out) != 3 {
		t.Errorf("homogeneous heights must pass untouched, kept %d", len(out))
	}
}

func TestLimitToCenter_EvenSurplus(t *testing.T) {
	cands := row(8, 0, 30, 20, 40, 10)

	out := limitToCenter(cands, 6)
	if len(out) != 6 {
		t.Fatalf("kept %d candidates, want 6", len(out))
	}
	// One candidate trimmed from each end.
	if out[0].X != cands[1].X || out[5].X != cands[6].X {
		t.Errorf("trimming should be symmetric: %+v", out)
	}
}

func TestLimitToCenter_OddSurplusDropsLooseEnd(t *testing.T) {
	// Tight packing on the left, a straggler far right.
	cands := row(6, 0, 30, 20, 40, 5)
	cands = append(cands, NewRectCandidate(300, 30, 20, 40))

	out := limitToCenter(cands, 6)
	if len(out) != 6 {
		t.Fatalf("kept %d candidates, want 6", len(out))
	}
	for _, c := range out {
		if c.X == 300 {
			t.Error("the loosely attached straggler should be dropped first")
		}
	}
}

func TestLimitToCenter_UnderLimitUntouched(t *testing.T) {
	cands := row(4, 0, 30, 20, 40, 10)
	if out := limitToCenter(cands, 6); len(out) != 4 {
		t.Errorf("kept %d candidates, want 4", len(out))
	}
}
