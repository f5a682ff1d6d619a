// Package pipeline orchestrates the per-image alignment run: load, edge
// detection, contour extraction and filtering, text-mask compositing,
// rotation fitting, rotation, and persistence of outputs.
//
// # Data Flow
//
// Data flows strictly forward through the stages:
//
//	raw image -> edge map -> contours -> filtered contours -> mask
//	          -> composited image -> correction angle -> aligned output
//
// No stage reads state produced after its own position, and all per-file
// state (images, grids, contours) is created fresh per input and dropped
// when the file's run ends.
//
// # Batch Semantics
//
// Files are independent. Each produces exactly one ProcessingResult; a
// failed or skipped file never affects another file or aborts the batch.
// With Config.Workers > 1 files run concurrently: a feeder goroutine streams
// paths to a worker pool, and context cancellation stops the feeder while
// letting in-flight files finish. Intermediate names derive from the source
// stem, so concurrent runs on different files never collide.
//
// # Artifacts
//
// Per successful file the pipeline writes <stem>_unrotated<ext> (the
// composited, pre-rotation intermediate, removed once the final output is
// persisted) and <stem><ext> (the aligned output, overwriting any existing
// file). With Config.Overlay it also writes a <stem>_contours<ext> debug
// image.
package pipeline
