package errors

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestProcessingError(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := NewInvalidImage("/in/a.png", "decode image", cause)

	if err.Kind != KindInvalidImage {
		t.Errorf("kind: got %q, want %q", err.Kind, KindInvalidImage)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return the cause")
	}

	msg := err.Error()
	for _, part := range []string{"INVALID_IMAGE", "/in/a.png", "decode image", "unexpected EOF"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, missing %q", msg, part)
		}
	}
}

func TestProcessingError_NoCause(t *testing.T) {
	err := NewUnsupportedFormat("/in/b.gif", ".gif")

	if err.Kind != KindUnsupportedFormat {
		t.Errorf("kind: got %q, want %q", err.Kind, KindUnsupportedFormat)
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap on causeless error should be nil")
	}
	if !strings.Contains(err.Error(), `".gif"`) {
		t.Errorf("Error() = %q, missing extension", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	direct := NewIO("/out/c.png", "create output", io.ErrClosedPipe)
	wrapped := fmt.Errorf("stage failed: %w", direct)
	doubleWrapped := fmt.Errorf("outer: %w", wrapped)

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", direct, KindIO},
		{"wrapped", wrapped, KindIO},
		{"double wrapped", doubleWrapped, KindIO},
		{"plain", io.EOF, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("%s: KindOf = %q, want %q", tt.name, got, tt.want)
		}
	}
}
