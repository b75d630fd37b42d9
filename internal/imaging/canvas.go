package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// WhiteCanvas returns a white, fully opaque NRGBA image of the given size.
// Used both as the shared working canvas letters are pasted onto and as the
// background of each per-character classifier canvas.
func WhiteCanvas(width, height int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return canvas
}

// CropGray extracts a rectangular region from a grayscale image. The region
// is clipped to the image bounds; a fully out-of-bounds region yields an
// empty image.
func CropGray(gray *image.Gray, region image.Rectangle) *image.Gray {
	region = region.Intersect(gray.Bounds())
	out := image.NewGray(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(out, out.Bounds(), gray, region.Min, draw.Src)
	return out
}

// PasteAt pastes an image onto the canvas with its top-left corner at pos,
// and surrounds the pasted region with a one pixel white border. The border
// keeps adjacent glyphs from merging through a shared plate frame when the
// canvas is later consumed as a whole.
func PasteAt(canvas *image.NRGBA, img image.Image, pos image.Point) *image.NRGBA {
	out := imaging.Paste(canvas, img, pos)
	b := img.Bounds()
	border := image.Rect(pos.X, pos.Y, pos.X+b.Dx(), pos.Y+b.Dy())
	DrawRectOutline(out, border, color.White)
	return out
}

// CenterOnCanvas places a character crop, centered, onto a fixed-size white
// canvas for hand-off to a classifier.
//
// The canvas is size × size pixels, 3-channel white. Crops larger than the
// padded interior (size minus padding on each side) are scaled down with
// Lanczos resampling, preserving aspect ratio; smaller crops are pasted at
// their native resolution.
func CenterOnCanvas(crop image.Image, size, padding int) *image.NRGBA {
	canvas := WhiteCanvas(size, size)

	interior := size - 2*padding
	if interior < 1 {
		interior = size
	}

	b := crop.Bounds()
	if b.Dx() > interior || b.Dy() > interior {
		crop = imaging.Fit(crop, interior, interior, imaging.Lanczos)
		b = crop.Bounds()
	}

	pos := image.Point{
		X: (size - b.Dx()) / 2,
		Y: (size - b.Dy()) / 2,
	}
	return imaging.Paste(canvas, crop, pos)
}

// DrawRectOutline draws a one pixel rectangle outline onto dst. The
// rectangle is clipped to the destination bounds.
func DrawRectOutline(dst *image.NRGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.Set(x, r.Min.Y, c)
		dst.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.Set(r.Min.X, y, c)
		dst.Set(r.Max.X-1, y, c)
	}
}

// FillRect fills a rectangular region of a grayscale image with the given
// value. Used to mark consumed regions on the working mask.
func FillRect(dst *image.Gray, r image.Rectangle, value uint8) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: value})
		}
	}
}
