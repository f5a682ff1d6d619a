package detection

import (
	"math"
	"sort"
)

// RotatedRect is a rectangle at an arbitrary rotation, described by its
// center, side extents, and angle.
//
// Angle follows the minimum-area-rectangle convention: degrees in [-90, 0),
// measuring from the horizontal axis to the nearest rectangle side in image
// coordinates (y grows downward). An axis-aligned rectangle reports -90.
type RotatedRect struct {
	// CenterX, CenterY locate the rectangle's center in pixel coordinates.
	CenterX float64
	CenterY float64

	// Width is the extent along the fitted side, Height the extent
	// perpendicular to it.
	Width  float64
	Height float64

	// Angle is the raw fit angle in degrees, in [-90, 0).
	Angle float64
}

// CorrectionAngle converts the raw fit angle into the rotation, in degrees,
// that aligns the rectangle's long axis with the horizontal.
//
// Raw angles below -45 flip to the complementary side (90 + raw); anything
// else is taken as-is. The branch at exactly -45 keeps near-diagonal fits
// from rotating 90 degrees the wrong way or turning text upside-down, and
// maps the axis-aligned -90 fit to a correction of zero.
func (r *RotatedRect) CorrectionAngle() float64 {
	if r.Angle < -45 {
		return 90 + r.Angle
	}
	return r.Angle
}

// MinAreaRect fits the minimum-area enclosing rectangle over a point set
// using rotating calipers on the convex hull.
//
// The smallest-area rectangle containing a convex polygon has a side
// collinear with one of the polygon's edges, so trying each hull edge's
// orientation and keeping the tightest bounding box is exhaustive.
//
// Returns false when the point set is empty. A single point yields a
// degenerate rectangle of zero extent at angle -90.
func MinAreaRect(points []Point) (*RotatedRect, bool) {
	hull := ConvexHull(points)
	if len(hull) == 0 {
		return nil, false
	}
	if len(hull) == 1 {
		return &RotatedRect{
			CenterX: float64(hull[0].X),
			CenterY: float64(hull[0].Y),
			Angle:   -90,
		}, true
	}

	bestArea := math.Inf(1)
	var bestTheta, bestMinU, bestMaxU, bestMinV, bestMaxV float64

	for i := range hull {
		p1 := hull[i]
		p2 := hull[(i+1)%len(hull)]
		if p1 == p2 {
			continue
		}
		theta := math.Atan2(float64(p2.Y-p1.Y), float64(p2.X-p1.X))
		cos := math.Cos(theta)
		sin := math.Sin(theta)

		// Project every hull point into the frame rotated by -theta.
		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			u := float64(p.X)*cos + float64(p.Y)*sin
			v := -float64(p.X)*sin + float64(p.Y)*cos
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}

		area := (maxU - minU) * (maxV - minV)
		if area < bestArea {
			bestArea = area
			bestTheta = theta
			bestMinU, bestMaxU = minU, maxU
			bestMinV, bestMaxV = minV, maxV
		}
	}

	cos := math.Cos(bestTheta)
	sin := math.Sin(bestTheta)
	cu := (bestMinU + bestMaxU) / 2
	cv := (bestMinV + bestMaxV) / 2

	// Fold the edge orientation into [0, 90), then shift into the [-90, 0)
	// reporting convention.
	deg := math.Mod(bestTheta*180/math.Pi, 90)
	if deg < 0 {
		deg += 90
	}

	return &RotatedRect{
		CenterX: cu*cos - cv*sin,
		CenterY: cu*sin + cv*cos,
		Width:   bestMaxU - bestMinU,
		Height:  bestMaxV - bestMinV,
		Angle:   deg - 90,
	}, true
}

// ConvexHull computes the convex hull of a point set with Andrew's monotone
// chain. The hull is returned in traversal order without repeating the first
// point. Inputs of two or fewer distinct points are returned as-is.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Dedupe; the edge map frequently yields repeated coordinates.
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) <= 2 {
		return pts
	}

	cross := func(o, a, b Point) int {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower []Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
