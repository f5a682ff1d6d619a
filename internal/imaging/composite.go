package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/scandoc/textalign/internal/errors"
)

// Blacken produces a new image in which every mask-foreground pixel is set
// to solid black and every background pixel is copied unchanged from the
// source.
//
// The polarity is deliberate: detected text regions are suppressed while
// the surrounding page texture is preserved, because the rotation fit that
// follows measures the contour shapes, not the glyph pixels. Do not invert
// it; downstream consumers depend on the blackened-text output.
//
// The mask must be congruent with the image; a dimension mismatch yields an
// INVALID_IMAGE error. The source image is never modified.
func Blacken(img image.Image, mask *Mask) (*image.NRGBA, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if mask.Width != width || mask.Height != height {
		return nil, errors.NewInvalidImage("", "mask dimensions do not match image", nil)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	black := color.NRGBA{0, 0, 0, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.Foreground(x, y) {
				out.SetNRGBA(x, y, black)
			}
		}
	}

	return out, nil
}
