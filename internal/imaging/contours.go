package imaging

import "image"

// Contour is a connected component of foreground pixels in a binary image.
type Contour []image.Point

// BoundingBox returns the axis-aligned bounding rectangle of the contour.
// An empty contour yields the zero rectangle.
func (c Contour) BoundingBox() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Contours finds connected components of foreground (255) pixels in a
// binary image.
//
// Connectivity is 8-connected (diagonals included), so the outline of a
// glyph traced by edge detection forms a single contour even where it is
// only diagonally linked. Components with fewer than minPoints pixels are
// discarded as noise.
//
// The scan order is row-major, so the result is deterministic for a given
// input. Points are reported in image coordinates (not bounds-relative).
func Contours(binary *image.Gray, minPoints int) []Contour {
	bounds := binary.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	visited := make([]bool, width*height)
	var contours []Contour

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || binary.Pix[y*binary.Stride+x] == 0 {
				continue
			}
			contour := traceComponent(binary, visited, x, y, width, height)
			if len(contour) >= minPoints {
				contours = append(contours, contour)
			}
		}
	}
	return contours
}

// traceComponent collects one 8-connected component with an iterative
// stack-based flood fill. Recursion would overflow on plate-frame contours,
// which can span thousands of pixels.
func traceComponent(binary *image.Gray, visited []bool, startX, startY, width, height int) Contour {
	bounds := binary.Bounds()
	stack := []image.Point{{X: startX, Y: startY}}
	var contour Contour

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || binary.Pix[p.Y*binary.Stride+p.X] == 0 {
			continue
		}

		visited[p.Y*width+p.X] = true
		contour = append(contour, image.Point{X: p.X + bounds.Min.X, Y: p.Y + bounds.Min.Y})

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return contour
}
