package detection

import (
	"testing"

	"github.com/scandoc/textalign/internal/imaging"
)

func TestExtractContours_FilledRegion(t *testing.T) {
	em := imaging.NewEdgeMap(40, 40)
	fillRegion(em, 10, 10, 29, 24)

	contours := ExtractContours(em)
	if len(contours) != 1 {
		t.Fatalf("contours: got %d, want 1", len(contours))
	}

	// Boundary pixel centers span 19x14; some tolerance for the trace.
	area := contours[0].Area()
	if area < 240 || area > 300 {
		t.Errorf("area: got %.1f, want ~266", area)
	}
}

func TestExtractContours_Ring(t *testing.T) {
	// A one-pixel rectangle outline traces to the same boundary as the
	// filled region it encloses.
	em := imaging.NewEdgeMap(40, 30)
	ringRegion(em, 5, 5, 25, 15)

	contours := ExtractContours(em)
	if len(contours) != 1 {
		t.Fatalf("contours: got %d, want 1", len(contours))
	}

	area := contours[0].Area()
	if area < 180 || area > 220 {
		t.Errorf("area: got %.1f, want ~200", area)
	}
}

func TestExtractContours_Empty(t *testing.T) {
	em := imaging.NewEdgeMap(20, 20)

	contours := ExtractContours(em)
	if len(contours) != 0 {
		t.Errorf("empty edge map: got %d contours, want 0", len(contours))
	}
}

func TestExtractContours_SeparateRegions(t *testing.T) {
	em := imaging.NewEdgeMap(60, 30)
	fillRegion(em, 5, 5, 15, 15)
	fillRegion(em, 35, 10, 50, 20)

	contours := ExtractContours(em)
	if len(contours) != 2 {
		t.Fatalf("contours: got %d, want 2", len(contours))
	}
}

func TestExtractContours_IsolatedPixel(t *testing.T) {
	em := imaging.NewEdgeMap(10, 10)
	em.SetEdge(4, 4)

	contours := ExtractContours(em)
	if len(contours) != 1 {
		t.Fatalf("contours: got %d, want 1", len(contours))
	}
	if area := contours[0].Area(); area != 0 {
		t.Errorf("single pixel area: got %.1f, want 0", area)
	}
	if kept := contours.FilterByArea(1); len(kept) != 0 {
		t.Errorf("speck survived the area filter: %d contours", len(kept))
	}
}

func TestContourArea(t *testing.T) {
	square := Contour{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if got := square.Area(); got != 16 {
		t.Errorf("square area: got %.1f, want 16", got)
	}

	degenerate := Contour{{0, 0}, {5, 5}}
	if got := degenerate.Area(); got != 0 {
		t.Errorf("two-point area: got %.1f, want 0", got)
	}
}

func TestFilterByArea_Monotonicity(t *testing.T) {
	em := imaging.NewEdgeMap(80, 60)
	em.SetEdge(70, 50) // speck
	fillRegion(em, 5, 5, 12, 12)
	fillRegion(em, 30, 10, 60, 40)

	all := ExtractContours(em)

	prevLen := len(all) + 1
	for _, threshold := range []float64{0, 10, 50, 500, 5000} {
		kept := all.FilterByArea(threshold)
		if len(kept) > prevLen {
			t.Fatalf("threshold %.0f: kept %d contours, more than %d at a lower threshold",
				threshold, len(kept), prevLen)
		}
		prevLen = len(kept)
	}

	if n := len(all.FilterByArea(5000)); n != 0 {
		t.Errorf("threshold above every area: got %d contours, want 0", n)
	}
}

func TestContourSet_Points(t *testing.T) {
	set := ContourSet{
		{{0, 0}, {1, 0}},
		{{5, 5}},
	}
	if got := len(set.Points()); got != 3 {
		t.Errorf("Points: got %d, want 3", got)
	}

	var empty ContourSet
	if got := empty.Points(); got != nil {
		t.Errorf("empty set Points: got %v, want nil", got)
	}
}

// Helper functions

// fillRegion sets every pixel in the inclusive rectangle as an edge.
func fillRegion(em *imaging.EdgeMap, x1, y1, x2, y2 int) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			em.SetEdge(x, y)
		}
	}
}

// ringRegion sets a one-pixel rectangle outline as edges.
func ringRegion(em *imaging.EdgeMap, x1, y1, x2, y2 int) {
	for x := x1; x <= x2; x++ {
		em.SetEdge(x, y1)
		em.SetEdge(x, y2)
	}
	for y := y1; y <= y2; y++ {
		em.SetEdge(x1, y)
		em.SetEdge(x2, y)
	}
}
