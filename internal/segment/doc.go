// Package segment implements character-candidate extraction for license
// plate images.
//
// Given a cropped plate raster, the package locates candidate character
// regions, filters them through a fixed sequence of geometric elimination
// and refinement stages, and produces ordered per-character crops ready for
// an external classifier.
//
// # Pipeline
//
// A Segmenter runs these stages in a fixed order:
//
//  1. Region finding: bilateral smoothing, adaptive thresholding, Canny
//     edges, contour extraction; every contour's bounding box becomes a
//     candidate. Plate polarity (dark-on-light vs light-on-dark) is
//     resolved once here.
//  2. Statistics: discard candidates outside the configured character
//     height band or below the minimum width, and oversized merged blobs;
//     derive average height/width and the vertical center.
//  3. Vertical deviation: discard candidates too far from the plate's
//     vertical center. Characters are assumed vertically centered on the
//     plate; this is a domain constant, not derived per image.
//  4. Breakup: discard extreme outliers, split double-width blobs (two
//     touching characters) into two equal halves.
//  5. Centroid dedup: collapse candidates whose centers of gravity nearly
//     coincide (nested contours of the same glyph).
//  6. Overlap elimination: of two overlapping boxes, the tighter one wins.
//  7. Height outlier elimination against the mean height.
//  8. Gap discovery: synthesize speculative candidates to the left of, in
//     between, and to the right of the detected run, so characters lost to
//     plate artwork still reach the classifier. The classifier, not this
//     package, rejects non-character insertions.
//  9. Center limiting: symmetric trim down to the configured maximum
//     character count.
//  10. Optional neighbor weighting: keep only the best-supported contiguous
//     run, merging heavily overlapping neighbors.
//  11. Letter extraction: crop, polarity-normalize, and center each
//     surviving candidate on a fixed-size classifier canvas.
//
// Every stage consumes and returns a candidate slice sorted by ascending X
// (reading order); any stage may reduce it to empty, which is a valid
// terminal outcome, not an error.
//
// # Determinism
//
// The pipeline contains no randomness: identical input raster and Config
// always produce byte-identical candidates and crops.
//
// # Concurrency
//
// A Segmenter is immutable after construction and safe for concurrent use;
// all working state is local to one Segment call.
package segment
