package pipeline

// ProcessingResult records the outcome for one input file. Every file the
// batch sees produces exactly one result, wherever processing stopped.
type ProcessingResult struct {
	// Source is the input file path.
	Source string

	// Output is the written output path. Empty unless Success.
	Output string

	// Success reports that the aligned output was written.
	Success bool

	// Skipped reports that the file was passed over (unsupported
	// extension) rather than attempted and failed.
	Skipped bool

	// Err is the originating failure for unsuccessful files. For skipped
	// files it carries the UNSUPPORTED_FORMAT kind.
	Err error
}
