// Package imaging provides image loading and binarization for the descriptor
// pipeline.
//
// This package turns grayscale digit scans into binary silhouettes: a cached
// loader decodes and grayscales source files, a thresholding step (fixed
// level or Otsu's method) splits pixels into foreground ink and background
// paper, and TrimToContent crops the silhouette to its content.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Bitmap values are not
// synchronized; once constructed they are treated as read-only and may then
// be shared freely between goroutines.
//
// # Error Handling
//
// Functions return errors for malformed input such as:
//   - Zero-sized image dimensions
//   - Thresholds outside the [0,1] intensity scale
//   - File I/O or decoding errors during loading
//
// An image whose pixels all land on the background side of the threshold is
// not an error; it yields a bitmap with no foreground, which downstream code
// reports as "no region found".
package imaging
