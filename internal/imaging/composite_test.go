package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestBlacken(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 180, 160, 255})
		}
	}

	mask := NewMask(10, 10)
	mask.SetForeground(2, 3)
	mask.SetForeground(7, 7)

	out, err := Blacken(img, mask)
	if err != nil {
		t.Fatalf("Blacken failed: %v", err)
	}

	// Foreground pixels are solid black.
	for _, p := range []struct{ x, y int }{{2, 3}, {7, 7}} {
		if got := out.NRGBAAt(p.x, p.y); got != (color.NRGBA{0, 0, 0, 255}) {
			t.Errorf("foreground pixel (%d,%d): got %v, want black", p.x, p.y, got)
		}
	}

	// Background pixels are copied verbatim.
	if got := out.NRGBAAt(5, 5); got != (color.NRGBA{200, 180, 160, 255}) {
		t.Errorf("background pixel: got %v, want source color", got)
	}

	// The source image is untouched.
	if got := img.NRGBAAt(2, 3); got != (color.NRGBA{200, 180, 160, 255}) {
		t.Errorf("source was mutated at (2,3): %v", got)
	}
}

func TestBlacken_EmptyMask(t *testing.T) {
	img := createEdgeTestImage(20, 20)
	mask := NewMask(20, 20)

	out, err := Blacken(img, mask)
	if err != nil {
		t.Fatalf("Blacken failed: %v", err)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			wr, wg, wb, _ := img.At(x, y).RGBA()
			gr, gg, gb, _ := out.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("pixel (%d,%d) changed with all-background mask", x, y)
			}
		}
	}
}

func TestBlacken_DimensionMismatch(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	mask := NewMask(5, 5)

	if _, err := Blacken(img, mask); err == nil {
		t.Fatal("expected error for mismatched mask dimensions, got nil")
	}
}
