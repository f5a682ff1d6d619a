package pipeline

// Config holds the tuning parameters of the alignment pipeline.
type Config struct {
	// EdgeLow is the low Canny gradient threshold (0-255). Default 50.
	EdgeLow int

	// EdgeHigh is the high Canny gradient threshold (0-255). Default 200.
	EdgeHigh int

	// MinContourArea is the minimum enclosed area, in square pixels, for a
	// contour to count as text rather than speckle noise. Default 20.
	MinContourArea float64

	// Workers is the number of files processed concurrently. Files are
	// independent, so any value is safe; 1 (the default) processes the
	// batch sequentially.
	Workers int

	// Overlay writes an extra <stem>_contours<ext> debug image per file
	// showing each surviving contour in a distinct hue. Default off.
	Overlay bool
}

// DefaultConfig returns the documented defaults, tuned for high-contrast
// text on scanned paper.
func DefaultConfig() Config {
	return Config{
		EdgeLow:        50,
		EdgeHigh:       200,
		MinContourArea: 20,
		Workers:        1,
	}
}
