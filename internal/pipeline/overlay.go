package pipeline

import (
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/scandoc/textalign/internal/detection"
)

// contourOverlay paints each contour's boundary onto a copy of the source
// image, one distinct hue per contour, evenly spaced around the color wheel.
// Debug artifact only; nothing downstream consumes it.
func contourOverlay(img image.Image, contours detection.ContourSet) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	for i, c := range contours {
		hue := float64(i) * 360.0 / float64(len(contours))
		r, g, b := colorful.Hsv(hue, 0.9, 0.95).RGB255()
		stroke := color.NRGBA{r, g, b, 255}
		for _, p := range c {
			out.SetNRGBA(p.X, p.Y, stroke)
		}
	}

	return out
}
