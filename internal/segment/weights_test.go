package segment

import (
	"image"
	"testing"
)

func TestAssignNeighborWeights_KeepsContiguousRun(t *testing.T) {
	cfg := DefaultConfig()
	cands := row(4, 0, 30, 20, 40, 10) // gaps within NeighborGapMaxPx
	cands = append(cands, NewRectCandidate(300, 30, 20, 40))

	out := assignNeighborWeights(cands, cfg)
	if len(out) != 4 {
		t.Fatalf("kept %d candidates, want 4", len(out))
	}
	for _, c := range out {
		if c.X == 300 {
			t.Error("isolated candidate should be dropped")
		}
		if c.Weight != 3 {
			t.Errorf("run member weight = %d, want 3: %+v", c.Weight, c)
		}
	}
}

func TestAssignNeighborWeights_AllIsolated(t *testing.T) {
	cfg := DefaultConfig()
	cands := row(3, 0, 30, 20, 40, 50) // gaps beyond NeighborGapMaxPx

	out := assignNeighborWeights(cands, cfg)
	if len(out) != 3 {
		t.Fatalf("kept %d candidates, want 3 (all score zero)", len(out))
	}
	for _, c := range out {
		if c.Weight != 0 {
			t.Errorf("isolated candidate weight = %d, want 0", c.Weight)
		}
	}
}

func TestAssignNeighborWeights_Empty(t *testing.T) {
	cfg := DefaultConfig()
	if out := assignNeighborWeights(nil, cfg); len(out) != 0 {
		t.Errorf("empty input should yield empty output, got %d", len(out))
	}
}

func TestMergeOverlapping_UnionsHeavyOverlap(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(0, 0, 20, 40),
		NewRectCandidate(5, 0, 20, 40), // 75% of the smaller box
		NewRectCandidate(100, 0, 20, 40),
	}

	out := mergeOverlapping(cands)
	if len(out) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(out))
	}
	if out[0].Bounds() != image.Rect(0, 0, 25, 40) {
		t.Errorf("merged bounds = %v, want (0,0)-(25,40)", out[0].Bounds())
	}
	if out[1].X != 100 {
		t.Errorf("distinct candidate lost: %+v", out)
	}
}

func TestMergeOverlapping_LightOverlapKept(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(0, 0, 20, 40),
		NewRectCandidate(15, 0, 20, 40), // 25% of the smaller box
	}
	if out := mergeOverlapping(cands); len(out) != 2 {
		t.Errorf("light overlap should not merge, kept %d", len(out))
	}
}

func TestMergeOverlapping_SortedOutput(t *testing.T) {
	cands := []RectCandidate{
		NewRectCandidate(60, 0, 20, 40),
		NewRectCandidate(0, 0, 20, 40),
		NewRectCandidate(3, 0, 20, 40),
	}

	out := mergeOverlapping(cands)
	for i := 1; i < len(out); i++ {
		if out[i].X < out[i-1].X {
			t.Fatalf("output not sorted by X: %+v", out)
		}
	}
}
