package nxcube

import (
	"fmt"
	"strings"
)

// Cube is an NxNxN twisty cube: the visible cubies of a cube of the
// given size, each tracked by centre-relative coordinates. A Cube is a
// plain in-memory state machine with no internal locking; share one
// across goroutines only behind external synchronisation.
type Cube struct {
	size int

	// edge is the coordinate magnitude of the outermost layer and coords
	// the ordered set of valid per-axis coordinate values: size entries,
	// step 1, symmetric about zero. Odd sizes include zero, even sizes
	// straddle it with two half-integer centre layers.
	edge   float64
	coords []float64

	pieces []*Piece
}

// New builds a solved cube of the given size. Sizes below 2 fail with
// ErrInvalidArgument.
func New(size int) (*Cube, error) {
	if size < 2 {
		return nil, fmt.Errorf("cube size must be at least 2, got %d: %w", size, ErrInvalidArgument)
	}

	c := &Cube{size: size}
	if size%2 == 1 {
		c.edge = float64((size - 1) / 2)
	} else {
		c.edge = float64(size)/2 - 0.5
	}
	c.coords = make([]float64, size)
	for i := range c.coords {
		c.coords[i] = -c.edge + float64(i)
	}

	// Only visible pieces are modelled: at least one coordinate must sit
	// on the boundary. Each boundary coordinate paints the matching slot.
	for _, x := range c.coords {
		for _, y := range c.coords {
			for _, z := range c.coords {
				if abs(x) != c.edge && abs(y) != c.edge && abs(z) != c.edge {
					continue
				}
				p := &Piece{X: x, Y: y, Z: z}
				for f := Facelet(0); f < 6; f++ {
					v := faceletVecs[f]
					if x*v[0]+y*v[1]+z*v[2] == c.edge {
						p.colours[f] = solvedColours[f]
					}
				}
				c.pieces = append(c.pieces, p)
			}
		}
	}
	return c, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Size returns the cube's edge length in cubies.
func (c *Cube) Size() int {
	return c.size
}

// EdgeValue returns the coordinate magnitude of the outermost layer.
func (c *Cube) EdgeValue() float64 {
	return c.edge
}

// PieceCount returns the number of visible cubies.
func (c *Cube) PieceCount() int {
	return len(c.pieces)
}

// Rotate applies a single notation token to the cube. The token is
// validated against the cube size before any piece moves, so a failed
// call leaves the state untouched.
func (c *Cube) Rotate(token string) error {
	m, err := ParseMove(token, c.size)
	if err != nil {
		return err
	}
	return c.apply(m)
}

// Apply validates a whitespace-separated sequence of tokens and then
// applies them in order. A sequence with any invalid token is rejected
// whole, before the first rotation.
func (c *Cube) Apply(sequence string) error {
	moves, err := ParseSequence(sequence, c.size)
	if err != nil {
		return err
	}
	for _, m := range moves {
		if err := c.apply(m); err != nil {
			return err
		}
	}
	return nil
}

// apply rotates every piece in the layer set resolved from m.
func (c *Cube) apply(m Move) error {
	layer := c.layerCoords(m)
	turns := m.quarterTurns()
	for _, p := range c.pieces {
		v := axisCoord(p, m.Axis)
		if !layer[v] {
			continue
		}
		for i := 0; i < turns; i++ {
			if err := p.Rotate(m.Axis); err != nil {
				return err
			}
		}
		if !c.validCoord(p.X) || !c.validCoord(p.Y) || !c.validCoord(p.Z) {
			return fmt.Errorf("piece landed at %s outside the coordinate system: %w", p, ErrInvariant)
		}
	}
	return nil
}

// layerCoords resolves a move into the set of coordinate values along
// its axis that belong to the moving layers. Depth is indexed from the
// move's own face: index 0 is the outermost layer on that side, so the
// two faces sharing an axis count through the coordinate list from
// opposite ends.
func (c *Cube) layerCoords(m Move) map[float64]bool {
	layer := make(map[float64]bool, c.size)
	if m.Whole {
		for _, v := range c.coords {
			layer[v] = true
		}
		return layer
	}
	low := m.Depth
	if m.Wide {
		low = 0
	}
	for depth := low; depth <= m.Depth; depth++ {
		if m.Negative {
			layer[c.coords[depth]] = true
		} else {
			layer[c.coords[c.size-1-depth]] = true
		}
	}
	return layer
}

// axisCoord returns the piece coordinate along the given axis.
func axisCoord(p *Piece, axis Axis) float64 {
	switch axis {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

func (c *Cube) validCoord(v float64) bool {
	for _, cv := range c.coords {
		if cv == v {
			return true
		}
	}
	return false
}

// Face returns the size-by-size grid of colour labels currently visible
// on the given face. Unpopulated cells come back as empty strings, which
// never happens on a well-formed cube.
func (c *Cube) Face(face Face) ([][]string, error) {
	if !face.valid() {
		return nil, fmt.Errorf("unknown face %d: %w", int(face), ErrInvalidArgument)
	}
	grid := make([][]string, c.size)
	for i := range grid {
		grid[i] = make([]string, c.size)
	}
	slot := face.facelet()
	for _, p := range c.pieces {
		col := p.colours[slot]
		if col == nil {
			continue
		}
		row, cell := c.faceCell(face, p)
		if row < 0 || row >= c.size || cell < 0 || cell >= c.size {
			return nil, fmt.Errorf("piece %s maps outside the %s face grid: %w", p, face, ErrInvariant)
		}
		grid[row][cell] = col.Label
	}
	return grid, nil
}

// faceCell maps a piece's two in-face coordinates to grid row/column.
// Every face has its own up/right convention so the grid reads correctly
// with that face held toward the viewer; seen from outside the cube, row
// 0 is the top of the face and column 0 its left edge.
func (c *Cube) faceCell(face Face, p *Piece) (int, int) {
	e := c.edge
	switch face {
	case FaceFront:
		return int(e - p.Y), int(p.X + e)
	case FaceBack:
		return int(e - p.Y), int(e - p.X)
	case FaceLeft:
		return int(e - p.Y), int(p.Z + e)
	case FaceRight:
		return int(e - p.Y), int(e - p.Z)
	case FaceTop:
		return int(p.Z + e), int(p.X + e)
	default: // FaceDown
		return int(e - p.Z), int(p.X + e)
	}
}

// IsSolved reports whether every face shows a single uniform colour.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		grid, err := c.Face(face)
		if err != nil {
			return false
		}
		want := grid[0][0]
		if want == "" {
			return false
		}
		for _, row := range grid {
			for _, label := range row {
				if label != want {
					return false
				}
			}
		}
	}
	return true
}

// Clone creates a deep copy of the cube. Colour values stay shared; they
// are immutable registry entries.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		size:   c.size,
		edge:   c.edge,
		coords: append([]float64(nil), c.coords...),
		pieces: make([]*Piece, len(c.pieces)),
	}
	for i, p := range c.pieces {
		clone.pieces[i] = p.clone()
	}
	return clone
}

// Equal reports whether two cubes hold identical state: the same size
// and, at every position, a piece with identical colour slots.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	snap := func(cube *Cube) map[[3]float64][6]string {
		m := make(map[[3]float64][6]string, len(cube.pieces))
		for _, p := range cube.pieces {
			var cols [6]string
			for f := Facelet(0); f < 6; f++ {
				cols[f] = p.colours[f].String()
			}
			m[[3]float64{p.X, p.Y, p.Z}] = cols
		}
		return m
	}
	a, b := snap(c), snap(other)
	if len(a) != len(b) {
		return false
	}
	for pos, cols := range a {
		if b[pos] != cols {
			return false
		}
	}
	return true
}

// String returns a compact unfolded layout: the top face, then the left,
// front, right and back faces side by side, then the down face.
func (c *Cube) String() string {
	face := func(f Face) [][]string {
		grid, _ := c.Face(f)
		return grid
	}
	top, down := face(FaceTop), face(FaceDown)
	middle := [][][]string{face(FaceLeft), face(FaceFront), face(FaceRight), face(FaceBack)}

	var b strings.Builder
	indent := strings.Repeat(" ", 2*c.size)
	writeRow := func(row []string) {
		for _, label := range row {
			if label == "" {
				label = "."
			}
			b.WriteString(label + " ")
		}
	}
	for _, row := range top {
		b.WriteString(indent)
		writeRow(row)
		b.WriteString("\n")
	}
	for r := 0; r < c.size; r++ {
		for _, grid := range middle {
			writeRow(grid[r])
		}
		b.WriteString("\n")
	}
	for _, row := range down {
		b.WriteString(indent)
		writeRow(row)
		b.WriteString("\n")
	}
	return b.String()
}

// Debug returns a short summary of the cube state.
func (c *Cube) Debug() string {
	return fmt.Sprintf("size=%d pieces=%d solved=%v", c.size, len(c.pieces), c.IsSolved())
}
