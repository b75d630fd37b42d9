package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createSolidImage creates a solid color test image
func createSolidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createSolidGray creates a solid grayscale test image
func createSolidGray(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestGrayscale_LuminanceWeights(t *testing.T) {
	tests := []struct {
		name string
		c    color.RGBA
		want uint8
	}{
		{"red", color.RGBA{R: 255, A: 255}, 76},
		{"green", color.RGBA{G: 255, A: 255}, 149},
		{"blue", color.RGBA{B: 255, A: 255}, 29},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 255},
		{"black", color.RGBA{A: 255}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gray := Grayscale(createSolidImage(4, 4, tt.c))
			got := gray.GrayAt(0, 0).Y
			if got != tt.want {
				t.Errorf("Grayscale(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestGrayscale_CopiesGrayInput(t *testing.T) {
	src := createSolidGray(4, 4, 100)
	out := Grayscale(src)

	out.Pix[0] = 200
	if src.Pix[0] != 100 {
		t.Error("mutating the output changed the source image")
	}
}

func TestMeanLuminance(t *testing.T) {
	// Left half 0, right half 200.
	img := createSolidGray(10, 10, 0)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	if got := MeanLuminance(img, img.Bounds()); got != 100 {
		t.Errorf("full-image mean = %v, want 100", got)
	}
	if got := MeanLuminance(img, image.Rect(0, 0, 5, 10)); got != 0 {
		t.Errorf("left-half mean = %v, want 0", got)
	}
	if got := MeanLuminance(img, image.Rect(5, 0, 10, 10)); got != 200 {
		t.Errorf("right-half mean = %v, want 200", got)
	}
}

func TestMeanLuminance_ClipsRegion(t *testing.T) {
	img := createSolidGray(10, 10, 50)

	// Region hanging past the right edge still averages what it covers.
	if got := MeanLuminance(img, image.Rect(5, 0, 100, 10)); got != 50 {
		t.Errorf("clipped mean = %v, want 50", got)
	}
	// Fully outside region yields 0.
	if got := MeanLuminance(img, image.Rect(100, 100, 200, 200)); got != 0 {
		t.Errorf("out-of-bounds mean = %v, want 0", got)
	}
}

func TestCenterStrip(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 60)
	strip := CenterStrip(bounds, 100)

	if strip.Dx() != 100 {
		t.Errorf("strip width = %d, want 100", strip.Dx())
	}
	if strip.Min.Y != 0 || strip.Max.Y != 60 {
		t.Errorf("strip should span full height, got %v", strip)
	}
	if strip.Min.X != 50 || strip.Max.X != 150 {
		t.Errorf("strip should be centered, got %v", strip)
	}
}

func TestCenterStrip_WiderThanImage(t *testing.T) {
	bounds := image.Rect(0, 0, 60, 30)
	strip := CenterStrip(bounds, 100)

	if !strip.In(bounds) {
		t.Errorf("strip %v escapes image bounds %v", strip, bounds)
	}
	if strip.Empty() {
		t.Error("clipped strip should not be empty")
	}
}

func TestInvert(t *testing.T) {
	img := createSolidGray(4, 4, 40)
	out := Invert(img)

	if got := out.GrayAt(0, 0).Y; got != 215 {
		t.Errorf("Invert(40) = %d, want 215", got)
	}
	if img.GrayAt(0, 0).Y != 40 {
		t.Error("Invert mutated its input")
	}
}
