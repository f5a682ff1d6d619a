package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotate rotates an image about its center by the given angle in degrees,
// counter-clockwise for positive angles.
//
// The output canvas is expanded so no content is cropped at the corners;
// newly exposed pixels are filled with white, matching the page background
// so a re-run over the output sees the fill as background rather than as
// fresh edges.
//
// An angle of 0 returns a pixel-identical copy (no canvas change).
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	if degrees == 0 {
		return imaging.Clone(img)
	}
	return imaging.Rotate(img, degrees, color.NRGBA{255, 255, 255, 255})
}
