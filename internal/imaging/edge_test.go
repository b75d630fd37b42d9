package imaging

import (
	"image"
	"testing"
)

func TestCannyEdges_UniformImage(t *testing.T) {
	img := createSolidGray(50, 50, 128)
	out := CannyEdges(img, 100, 200)

	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("uniform image produced edge pixel at index %d", i)
		}
	}
}

func TestCannyEdges_FindsRectangleBoundary(t *testing.T) {
	glyph := image.Rect(15, 10, 35, 40)
	img := createGlyphImage(50, 50, glyph)

	out := CannyEdges(img, 100, 200)

	edgeCount := 0
	for _, v := range out.Pix {
		if v == 255 {
			edgeCount++
		}
	}
	if edgeCount == 0 {
		t.Fatal("no edges found around a high-contrast rectangle")
	}

	// Every edge pixel must sit near the rectangle boundary; the blur pass
	// spreads the transition by a few pixels.
	margin := 4
	inner := glyph.Inset(margin)
	outer := glyph.Inset(-margin)
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if out.Pix[y*out.Stride+x] != 255 {
				continue
			}
			p := image.Pt(x, y)
			if p.In(inner) || !p.In(outer) {
				t.Errorf("edge pixel at %v is far from the rectangle boundary", p)
			}
		}
	}
}

func TestCannyEdges_TinyImage(t *testing.T) {
	img := createSolidGray(2, 2, 255)
	out := CannyEdges(img, 100, 200)

	if out.Bounds() != img.Bounds() {
		t.Errorf("bounds %v, want %v", out.Bounds(), img.Bounds())
	}
	for _, v := range out.Pix {
		if v != 0 {
			t.Fatal("sub-kernel image should produce an empty edge map")
		}
	}
}

func TestCannyEdges_HighThresholdSuppresses(t *testing.T) {
	// A weak 30-level step is below a high threshold pair.
	img := createSolidGray(30, 30, 100)
	for y := 0; y < 30; y++ {
		for x := 15; x < 30; x++ {
			img.Pix[y*img.Stride+x] = 130
		}
	}

	strong := CannyEdges(img, 10, 20)
	weak := CannyEdges(img, 250, 254)

	strongCount, weakCount := 0, 0
	for i := range strong.Pix {
		if strong.Pix[i] == 255 {
			strongCount++
		}
		if weak.Pix[i] == 255 {
			weakCount++
		}
	}
	if strongCount == 0 {
		t.Error("permissive thresholds should detect the step edge")
	}
	if weakCount != 0 {
		t.Errorf("thresholds above the gradient magnitude kept %d edge pixels", weakCount)
	}
}
