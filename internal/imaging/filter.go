package imaging

import (
	"image"
	"math"
)

// Bilateral applies an edge-preserving bilateral filter to a grayscale
// image.
//
// A bilateral filter smooths noise the way a Gaussian blur does, but
// weights each neighbor by both spatial distance and intensity difference,
// so sharp transitions such as glyph edges survive the smoothing.
// This is the standard preparation step before adaptive thresholding.
//
// Parameters:
//   - gray: Source grayscale image.
//   - diameter: Diameter of the pixel neighborhood (odd; typical 9).
//   - sigmaColor: Standard deviation of the intensity weight. Larger values
//     mix more dissimilar pixels together. Typical: 75.
//   - sigmaSpace: Standard deviation of the spatial weight. Larger values
//     let farther pixels influence the result. Typical: 75.
//
// Border pixels use clamped (replicated) edge values, matching the
// convolution convention used by CannyEdges.
func Bilateral(gray *image.Gray, diameter int, sigmaColor, sigmaSpace float64) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)

	if diameter < 1 {
		diameter = 1
	}
	radius := diameter / 2

	// Precompute the spatial kernel and an intensity-difference lookup.
	spatial := make([][]float64, diameter)
	for ky := 0; ky < diameter; ky++ {
		spatial[ky] = make([]float64, diameter)
		for kx := 0; kx < diameter; kx++ {
			dy := float64(ky - radius)
			dx := float64(kx - radius)
			spatial[ky][kx] = math.Exp(-(dx*dx + dy*dy) / (2 * sigmaSpace * sigmaSpace))
		}
	}
	var rangeWeight [256]float64
	for d := 0; d < 256; d++ {
		rangeWeight[d] = math.Exp(-float64(d*d) / (2 * sigmaColor * sigmaColor))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y

			var sum, norm float64
			for ky := -radius; ky <= radius; ky++ {
				py := clamp(y+ky, 0, height-1)
				for kx := -radius; kx <= radius; kx++ {
					px := clamp(x+kx, 0, width-1)
					v := gray.GrayAt(bounds.Min.X+px, bounds.Min.Y+py).Y

					diff := int(v) - int(center)
					if diff < 0 {
						diff = -diff
					}
					w := spatial[ky+radius][kx+radius] * rangeWeight[diff]
					sum += w * float64(v)
					norm += w
				}
			}
			out.Pix[y*out.Stride+x] = uint8(sum/norm + 0.5)
		}
	}
	return out
}

// AdaptiveThreshold computes a locally thresholded binary image.
//
// Each pixel is compared against the mean of its blockSize × blockSize
// neighborhood minus the constant c. Pixels at or below the local mean
// become foreground (255) and pixels above it become background (0). This
// is the inverted-binary convention, which marks dark glyphs as foreground
// on a typical light plate.
//
// Parameters:
//   - gray: Source grayscale image.
//   - blockSize: Side of the local window in pixels. Forced to be odd and
//     at least 3. The segmentation pipeline derives it from
//     min(height, width)/4 rounded up to odd.
//   - c: Constant subtracted from the local mean before comparison.
//
// The local mean is computed with an integral image, so the cost is
// independent of blockSize. Windows are clipped at the image border.
func AdaptiveThreshold(gray *image.Gray, blockSize int, c float64) *image.Gray {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)
	if width == 0 || height == 0 {
		return out
	}

	if blockSize < 3 {
		blockSize = 3
	}
	if blockSize%2 == 0 {
		blockSize++
	}
	radius := blockSize / 2

	// Integral image with a zero row/column of padding.
	integral := make([]uint64, (width+1)*(height+1))
	stride := width + 1
	for y := 0; y < height; y++ {
		var rowSum uint64
		for x := 0; x < width; x++ {
			rowSum += uint64(gray.Pix[y*gray.Stride+x])
			integral[(y+1)*stride+x+1] = integral[y*stride+x+1] + rowSum
		}
	}

	for y := 0; y < height; y++ {
		y0 := clamp(y-radius, 0, height-1)
		y1 := clamp(y+radius, 0, height-1)
		for x := 0; x < width; x++ {
			x0 := clamp(x-radius, 0, width-1)
			x1 := clamp(x+radius, 0, width-1)

			area := uint64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*stride+x1+1] - integral[y0*stride+x1+1] -
				integral[(y1+1)*stride+x0] + integral[y0*stride+x0]
			mean := float64(sum) / float64(area)

			if float64(gray.Pix[y*gray.Stride+x]) <= mean-c {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution and window operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
