package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestRotate_ZeroAngle(t *testing.T) {
	img := createEdgeTestImage(30, 20)

	out := Rotate(img, 0)

	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 20 {
		t.Fatalf("dimensions changed: got %dx%d, want 30x20",
			out.Bounds().Dx(), out.Bounds().Dy())
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			wr, wg, wb, _ := img.At(x, y).RGBA()
			gr, gg, gb, _ := out.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb {
				t.Fatalf("pixel (%d,%d) changed on zero rotation", x, y)
			}
		}
	}
}

func TestRotate_QuarterTurn(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	out := Rotate(img, 90)

	// Canvas swaps axes, give or take a pixel of rounding.
	if dx := out.Bounds().Dx(); absInt(dx-10) > 1 {
		t.Errorf("width after 90 degrees: got %d, want ~10", dx)
	}
	if dy := out.Bounds().Dy(); absInt(dy-30) > 1 {
		t.Errorf("height after 90 degrees: got %d, want ~30", dy)
	}
}

func TestRotate_ExpandsCanvas(t *testing.T) {
	// A 45-degree turn of a square needs a canvas about sqrt(2) as wide.
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}

	out := Rotate(img, 45)

	want := int(40 * math.Sqrt(2))
	if dx := out.Bounds().Dx(); absInt(dx-want) > 2 {
		t.Errorf("canvas width after 45 degrees: got %d, want ~%d", dx, want)
	}

	// Newly exposed corners are filled white.
	if got := out.NRGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("corner fill: got %v, want white", got)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
