// Package errors defines the error kinds produced by the processing pipeline.
//
// Every per-file failure is classified under a Kind so the orchestrator can
// record and log it uniformly. Errors wrap their cause and support the
// standard errors.Is/errors.As unwrapping chain.
package errors

import "fmt"

// Kind classifies a processing failure.
type Kind string

const (
	// KindInvalidImage marks an unreadable, corrupt, or zero-dimension image.
	KindInvalidImage Kind = "INVALID_IMAGE"

	// KindUnsupportedFormat marks a file whose extension is not in the
	// supported set. Files failing with this kind are skipped, not errored.
	KindUnsupportedFormat Kind = "UNSUPPORTED_FORMAT"

	// KindIO marks a read or write failure on an input, output, or
	// intermediate path.
	KindIO Kind = "IO"
)

// ProcessingError is a classified per-file error.
type ProcessingError struct {
	Kind  Kind
	Path  string
	Msg   string
	Cause error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Path, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Msg)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}

// NewInvalidImage reports an image that could not be decoded or has
// unusable dimensions.
func NewInvalidImage(path, msg string, cause error) *ProcessingError {
	return &ProcessingError{Kind: KindInvalidImage, Path: path, Msg: msg, Cause: cause}
}

// NewUnsupportedFormat reports a file extension outside the supported set.
func NewUnsupportedFormat(path, ext string) *ProcessingError {
	return &ProcessingError{Kind: KindUnsupportedFormat, Path: path, Msg: fmt.Sprintf("unsupported extension %q", ext)}
}

// NewIO reports a filesystem failure.
func NewIO(path, msg string, cause error) *ProcessingError {
	return &ProcessingError{Kind: KindIO, Path: path, Msg: msg, Cause: cause}
}

// KindOf returns the Kind of err if it is (or wraps) a ProcessingError,
// or the empty Kind otherwise.
func KindOf(err error) Kind {
	for err != nil {
		if pe, ok := err.(*ProcessingError); ok {
			return pe.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
