package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// CannyEdges performs Canny edge detection on a grayscale image and returns
// a binary edge map where edge pixels are 255 and non-edges are 0.
//
// The segmentation pipeline runs this over the adaptively thresholded plate
// so that every glyph, already reduced to a solid blob, contributes a
// closed boundary for contour extraction.
//
// Parameters:
//   - gray: Source grayscale image (usually a binary thresholded plate).
//   - thresholdLow: Low hysteresis threshold (0-255). Gradients below this
//     are discarded. Typical: 100.
//   - thresholdHigh: High hysteresis threshold (0-255). Gradients above
//     this are always kept. Typical: 200.
//
// # Algorithm
//
//  1. Gaussian blur (sigma ≈ 1.4) to suppress noise
//  2. Sobel gradients: magnitude = sqrt(Gx² + Gy²), direction = atan2(Gy, Gx)
//  3. Non-maximum suppression along the gradient direction, thinning edges
//     to one pixel
//  4. Hysteresis: strong edges (≥ thresholdHigh) are kept; weak edges
//     (≥ thresholdLow) survive only when adjacent to a strong edge
func CannyEdges(gray *image.Gray, thresholdLow, thresholdHigh int) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	out := image.NewGray(bounds)
	if width < 3 || height < 3 {
		return out
	}

	blurred := Grayscale(blur.Gaussian(gray, 1.4))

	sobelX := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	magnitude := make([]float64, width*height)
	direction := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				py := clamp(y+ky, 0, height-1)
				for kx := -1; kx <= 1; kx++ {
					px := clamp(x+kx, 0, width-1)
					v := float64(blurred.Pix[py*blurred.Stride+px])
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y*width+x] = math.Sqrt(gx*gx + gy*gy)
			direction[y*width+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression.
	suppressed := make([]float64, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			angle := direction[y*width+x]
			mag := magnitude[y*width+x]

			var n1, n2 float64
			switch {
			case (angle >= -math.Pi/8 && angle < math.Pi/8) || angle >= 7*math.Pi/8 || angle < -7*math.Pi/8:
				n1 = magnitude[y*width+x-1]
				n2 = magnitude[y*width+x+1]
			case (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8):
				n1 = magnitude[(y-1)*width+x+1]
				n2 = magnitude[(y+1)*width+x-1]
			case (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8):
				n1 = magnitude[(y-1)*width+x]
				n2 = magnitude[(y+1)*width+x]
			default:
				n1 = magnitude[(y-1)*width+x-1]
				n2 = magnitude[(y+1)*width+x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y*width+x] = mag
			}
		}
	}

	// Double threshold with edge tracking by hysteresis.
	low := float64(thresholdLow)
	high := float64(thresholdHigh)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y*width+x]
			switch {
			case val >= high:
				out.Pix[y*out.Stride+x] = 255
			case val >= low:
				for ky := -1; ky <= 1; ky++ {
					py := clamp(y+ky, 0, height-1)
					for kx := -1; kx <= 1; kx++ {
						px := clamp(x+kx, 0, width-1)
						if suppressed[py*width+px] >= high {
							out.Pix[y*out.Stride+x] = 255
						}
					}
				}
			}
		}
	}
	return out
}
