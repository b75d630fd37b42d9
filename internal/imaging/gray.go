package imaging

import (
	"image"
	"image/color"
)

// Grayscale converts an image to 8-bit grayscale using ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B).
//
// The returned image has the same bounds as the input. Inputs that are
// already *image.Gray are copied, not aliased, so callers may mutate the
// result freely.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)

	if src, ok := img.(*image.Gray); ok {
		copy(gray.Pix, src.Pix)
		return gray
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}
	return gray
}

// MeanLuminance returns the mean pixel value of a grayscale image within
// the given region. The region is clipped to the image bounds; an empty
// intersection yields 0.
func MeanLuminance(gray *image.Gray, region image.Rectangle) float64 {
	region = region.Intersect(gray.Bounds())
	if region.Empty() {
		return 0
	}

	var sum uint64
	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := gray.Pix[(y-gray.Rect.Min.Y)*gray.Stride:]
		for x := region.Min.X; x < region.Max.X; x++ {
			sum += uint64(row[x-gray.Rect.Min.X])
		}
	}
	return float64(sum) / float64(region.Dx()*region.Dy())
}

// CenterStrip returns a vertical strip of the given width centered
// horizontally on the image, spanning its full height. Strips wider than
// the image are clipped to the image bounds.
//
// The segmentation pipeline samples this strip to decide plate polarity:
// measuring around the characters rather than across the whole plate keeps
// border and frame pixels from skewing the decision.
func CenterStrip(bounds image.Rectangle, width int) image.Rectangle {
	mid := bounds.Min.X + bounds.Dx()/2
	strip := image.Rect(mid-width/2, bounds.Min.Y, mid+width/2, bounds.Max.Y)
	return strip.Intersect(bounds)
}

// Invert returns a copy of the grayscale image with every pixel value
// replaced by 255-v. Used to normalize light-on-dark plates so glyphs are
// always dark on a light background.
func Invert(gray *image.Gray) *image.Gray {
	out := image.NewGray(gray.Bounds())
	for i, v := range gray.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}
