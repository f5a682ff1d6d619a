// Package detection turns binary edge maps into the geometric features the
// alignment pipeline reasons about: contours, text-region masks, and the
// minimum-area enclosing rectangle whose orientation drives the rotation
// correction.
//
// # Pipeline
//
// The functions compose in a fixed order:
//
//  1. ExtractContours groups connected edge pixels and traces each group's
//     closed outer boundary
//  2. ContourSet.FilterByArea discards speckle noise by enclosed area
//  3. BuildMask rasterizes the survivors into a region-of-interest mask
//  4. MinAreaRect fits the tightest rotated rectangle over the surviving
//     boundary points; CorrectionAngle derives the de-skew rotation
//
// An image with no qualifying contours degrades gracefully at every step:
// empty set, all-background mask, correction angle zero.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. Angles are
// measured in this frame, so a positive screen-clockwise skew of page text
// shows up in the raw fit angle range [-90, 0).
//
// # Angle Convention
//
// MinAreaRect reports its raw angle the way OpenCV-style fits do, in
// [-90, 0); axis-aligned content reports -90, not 0. CorrectionAngle's
// branch at -45 is what keeps near-square fits from being corrected 90
// degrees the wrong way. Callers must not renormalize raw angles
// themselves.
package detection
