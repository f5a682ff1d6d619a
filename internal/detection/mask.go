package detection

import (
	"math"
	"sort"

	"github.com/scandoc/textalign/internal/imaging"
)

// BuildMask rasterizes the filtered contours into a foreground mask of the
// given dimensions.
//
// Each contour's enclosed interior, boundary included, is flagged as
// foreground; overlapping contours merge as a union. An empty set produces
// an all-background mask. The mask dimensions always match the requested
// width and height, which must be those of the source image.
func BuildMask(contours ContourSet, width, height int) *imaging.Mask {
	mask := imaging.NewMask(width, height)
	for _, c := range contours {
		fillContour(mask, c)
	}
	return mask
}

// fillContour paints one contour's interior and boundary into the mask
// using even-odd scanline filling over the boundary polygon.
//
// Scanlines are sampled at half-pixel offsets so polygon vertices, which sit
// on integer coordinates, never land exactly on a sample line.
func fillContour(mask *imaging.Mask, c Contour) {
	// Boundary pixels are always foreground.
	for _, p := range c {
		mask.SetForeground(p.X, p.Y)
	}
	if len(c) < 3 {
		return
	}

	minY, maxY := c[0].Y, c[0].Y
	for _, p := range c {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for y := minY; y < maxY; y++ {
		fy := float64(y) + 0.5

		// X coordinates where the boundary crosses this scanline.
		var crossings []float64
		for i := range c {
			p1 := c[i]
			p2 := c[(i+1)%len(c)]
			if (float64(p1.Y) <= fy) == (float64(p2.Y) <= fy) {
				continue
			}
			t := (fy - float64(p1.Y)) / float64(p2.Y-p1.Y)
			crossings = append(crossings, float64(p1.X)+t*float64(p2.X-p1.X))
		}
		sort.Float64s(crossings)

		for i := 0; i+1 < len(crossings); i += 2 {
			x1 := int(math.Ceil(crossings[i]))
			x2 := int(math.Floor(crossings[i+1]))
			for x := x1; x <= x2; x++ {
				mask.SetForeground(x, y)
			}
		}
	}
}
