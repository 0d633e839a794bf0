// Package regions implements the shape descriptor extractor: connected
// component labeling and per-component measurement of binary images.
//
// Given a binary silhouette, Extract labels the 8-connected foreground
// components and measures each one's pixel area, bounding box, centroid,
// eccentricity (from second-order spatial moments), and Euler number
// (1 minus the number of enclosed holes). Largest implements the caller-side
// selection policy of keeping only the maximum-area component.
//
// # Connectivity
//
// Foreground components use 8-connectivity; enclosed background components
// (holes) use 4-connectivity. The two must differ or a one-pixel diagonal
// stroke could not enclose anything.
//
// # Failure Semantics
//
// Extract does not fail on well-formed binary input. An all-background
// bitmap yields an empty region slice, which callers report as "no region
// found". Only malformed input (nil or zero-sized bitmaps) is rejected, with
// ErrInvalidInput, before computation begins.
package regions
