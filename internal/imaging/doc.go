// Package imaging provides the raster primitives behind plate character
// segmentation.
//
// This package implements the low-level image operations the segmentation
// pipeline is built from: grayscale conversion, edge-preserving bilateral
// smoothing, adaptive (local mean) thresholding, Canny edge detection,
// connected-component contour extraction, and the letter canvas operations
// used to hand character crops to a downstream classifier. All operations
// work with standard Go image types and use a coordinate system where (0,0)
// is at the top-left corner, X increases rightward, and Y increases downward.
//
// # Binary Images
//
// Thresholding and edge detection produce *image.Gray rasters containing
// only the values 0 and 255. Foreground (text or edge) pixels are 255;
// whether "foreground" means dark-on-light or light-on-dark glyphs is
// decided by the caller via polarity resolution (see MeanLuminance and
// the segment package).
//
// # Thread Safety
//
// The Loader type is safe for concurrent use. All other operations are
// stateless pure functions over their inputs and can be called concurrently
// on different images.
//
// # Error Handling
//
// Functions return errors only for invalid inputs (nil images, zero
// dimensions, undecodable files). Degenerate but well-formed inputs, such
// as a blank raster or a threshold window larger than the image, produce
// valid, possibly empty results rather than errors.
package imaging
