// Package imaging provides the raster operations of the alignment pipeline:
// loading and saving, Canny edge detection, mask compositing, and rotation.
//
// All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Grids
//
// EdgeMap and Mask are binary grids congruent with the image they were
// derived from. An EdgeMap is produced by EdgeDetect and consumed by the
// contour extractor; a Mask selects the text region for compositing.
//
// # Ownership
//
// Every operation returns a new image or grid; sources are never mutated.
// Nothing in this package retains state between calls, so instances live
// exactly as long as one file's pipeline run.
//
// # Error Handling
//
// Functions return classified errors from internal/errors:
//   - INVALID_IMAGE for undecodable or zero-dimension inputs and for
//     mask/image dimension mismatches
//   - UNSUPPORTED_FORMAT for destination extensions outside the raster set
//   - IO for filesystem failures
package imaging
