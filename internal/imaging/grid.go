package imaging

// EdgeMap is a binary grid marking edge pixels detected in an image.
//
// It always has the same dimensions as the image it was derived from.
// The zero pixel value is "not an edge".
type EdgeMap struct {
	// Width of the grid in pixels.
	Width int

	// Height of the grid in pixels.
	Height int

	bits [][]bool
}

// NewEdgeMap creates an all-clear edge map of the given dimensions.
func NewEdgeMap(width, height int) *EdgeMap {
	bits := make([][]bool, height)
	for y := range bits {
		bits[y] = make([]bool, width)
	}
	return &EdgeMap{Width: width, Height: height, bits: bits}
}

// Edge reports whether (x, y) is an edge pixel.
// Coordinates outside the grid are never edges.
func (m *EdgeMap) Edge(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.bits[y][x]
}

// SetEdge marks (x, y) as an edge pixel. Out-of-range coordinates are ignored.
func (m *EdgeMap) SetEdge(x, y int) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.bits[y][x] = true
}

// Dilate returns a new edge map where every edge pixel is grown into its
// 3x3 neighborhood, clipped to the grid. Non-maximum suppression can leave
// single-pixel gaps along staircase diagonals; one dilation pass bridges
// them so outlines stay connected for contour tracing.
func (m *EdgeMap) Dilate() *EdgeMap {
	out := NewEdgeMap(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.bits[y][x] {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					out.SetEdge(x+dx, y+dy)
				}
			}
		}
	}
	return out
}

// EdgeCount returns the number of edge pixels in the map.
func (m *EdgeMap) EdgeCount() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.bits[y][x] {
				n++
			}
		}
	}
	return n
}

// Mask is a binary grid selecting a region of interest within an image.
//
// Foreground pixels mark detected text regions; everything else is
// background. A Mask is always congruent with the image it was built for.
type Mask struct {
	// Width of the grid in pixels.
	Width int

	// Height of the grid in pixels.
	Height int

	fore [][]bool
}

// NewMask creates an all-background mask of the given dimensions.
func NewMask(width, height int) *Mask {
	fore := make([][]bool, height)
	for y := range fore {
		fore[y] = make([]bool, width)
	}
	return &Mask{Width: width, Height: height, fore: fore}
}

// Foreground reports whether (x, y) is a foreground (text region) pixel.
// Coordinates outside the grid are background.
func (m *Mask) Foreground(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.fore[y][x]
}

// SetForeground marks (x, y) as foreground. Out-of-range coordinates are
// ignored, so callers may paint clipped spans without bounds checks.
func (m *Mask) SetForeground(x, y int) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.fore[y][x] = true
}

// ForegroundCount returns the number of foreground pixels in the mask.
func (m *Mask) ForegroundCount() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.fore[y][x] {
				n++
			}
		}
	}
	return n
}
