package detection

import (
	"math"

	"github.com/scandoc/textalign/internal/imaging"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Contour is the closed boundary of a connected edge region, as an ordered
// sequence of adjacent pixel coordinates. The sequence wraps: the last point
// is adjacent to the first.
type Contour []Point

// Area returns the area enclosed by the contour in square pixels, computed
// with the shoelace formula over the boundary sequence. Contours with fewer
// than three points enclose nothing.
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}
	sum := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		sum += float64(c[i].X*c[j].Y - c[j].X*c[i].Y)
	}
	return math.Abs(sum) / 2
}

// ContourSet is an unordered collection of contours. Insertion order carries
// no meaning.
type ContourSet []Contour

// ExtractContours traces the closed outer boundaries of all connected edge
// regions in an edge map.
//
// Connected regions are grouped with an iterative 8-connected flood fill,
// then each region's outer boundary is walked in order with Moore-neighbor
// tracing. Isolated edge pixels yield single-point contours (area 0), which
// the area filter removes.
//
// An edge map with no set pixels yields an empty set, not an error.
func ExtractContours(em *imaging.EdgeMap) ContourSet {
	visited := make([][]bool, em.Height)
	for y := range visited {
		visited[y] = make([]bool, em.Width)
	}

	contours := make(ContourSet, 0)

	for y := 0; y < em.Height; y++ {
		for x := 0; x < em.Width; x++ {
			if em.Edge(x, y) && !visited[y][x] {
				region := floodFill(em, visited, x, y)
				contours = append(contours, traceBoundary(region))
			}
		}
	}

	return contours
}

// FilterByArea returns the contours whose enclosed area meets the minimum.
//
// The area filter is the sole defense against speckle noise in the edge map:
// text-stroke clusters enclose real area while noise specks do not. Raising
// the threshold can only shrink the result.
func (s ContourSet) FilterByArea(minArea float64) ContourSet {
	kept := make(ContourSet, 0, len(s))
	for _, c := range s {
		if c.Area() >= minArea {
			kept = append(kept, c)
		}
	}
	return kept
}

// Points returns the union of all boundary points across the set.
func (s ContourSet) Points() []Point {
	var points []Point
	for _, c := range s {
		points = append(points, c...)
	}
	return points
}

// floodFill collects the connected edge region containing (startX, startY).
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions. Marks visited pixels as it goes. Connectivity is
// 8-connected (includes diagonals).
func floodFill(em *imaging.EdgeMap, visited [][]bool, startX, startY int) map[Point]bool {
	region := make(map[Point]bool)
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= em.Width || p.Y < 0 || p.Y >= em.Height {
			continue
		}
		if visited[p.Y][p.X] || !em.Edge(p.X, p.Y) {
			continue
		}

		visited[p.Y][p.X] = true
		region[p] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return region
}

// mooreNeighbors lists the 8 neighbor offsets in clockwise screen order
// (y grows downward), starting from west.
var mooreNeighbors = [8]Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// traceBoundary walks the outer boundary of a connected region in clockwise
// order using Moore-neighbor tracing.
//
// The walk starts at the topmost-leftmost region pixel, whose west neighbor
// is guaranteed to lie outside the region, and follows the region's rim
// until it returns to the start. A single-pixel region yields a one-point
// contour.
func traceBoundary(region map[Point]bool) Contour {
	// Topmost, then leftmost pixel.
	var start Point
	first := true
	for p := range region {
		if first || p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
			first = false
		}
	}
	if first {
		return nil
	}

	contour := Contour{start}
	current := start
	backtrack := Point{X: start.X - 1, Y: start.Y}

	// The rim cannot be longer than the region itself times the
	// neighborhood size; the cap guards against pathological loops.
	for steps := 0; steps < 4*len(region)+8; steps++ {
		// Index of the backtrack position among the current pixel's
		// Moore neighbors.
		from := 0
		for i, d := range mooreNeighbors {
			if current.X+d.X == backtrack.X && current.Y+d.Y == backtrack.Y {
				from = i
				break
			}
		}

		// Scan clockwise from just past the backtrack position for the
		// next region pixel; the neighbor examined immediately before it
		// becomes the new backtrack.
		found := false
		var next Point
		prev := backtrack
		for i := 1; i <= 8; i++ {
			d := mooreNeighbors[(from+i)%8]
			candidate := Point{X: current.X + d.X, Y: current.Y + d.Y}
			if region[candidate] {
				next = candidate
				found = true
				break
			}
			prev = candidate
		}

		if !found {
			// Isolated pixel: the contour is the single start point.
			return contour
		}
		if next == start {
			return contour
		}

		contour = append(contour, next)
		current = next
		backtrack = prev
	}

	return contour
}
