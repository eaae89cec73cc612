package nxcube

import (
	"fmt"
	"strings"
)

// Piece is a single cubie: a 3-D position plus up to six directional
// colours. Coordinates are relative to the cube centre; on even cubes
// they are half-integers, which float64 represents exactly, so all
// comparisons below are exact.
type Piece struct {
	X, Y, Z float64

	// colours holds one optional colour per facelet direction. A slot is
	// populated only while the piece sits on the matching boundary of the
	// cube; rotation moves colours between slots but never invents or
	// drops one.
	colours [6]*Colour
}

// ColourAt returns the colour facing the given direction, or nil for an
// unpainted slot.
func (p *Piece) ColourAt(f Facelet) *Colour {
	if f < 0 || f >= 6 {
		return nil
	}
	return p.colours[f]
}

// PaintedSides returns the number of populated colour slots: 1 for a
// face centre, 2 for an edge, 3 for a corner.
func (p *Piece) PaintedSides() int {
	n := 0
	for _, c := range p.colours {
		if c != nil {
			n++
		}
	}
	return n
}

// Rotate turns the piece 90 degrees in the positive direction about the
// given axis, updating both its position and its colour slots. Applying
// it four times is the identity. An unknown axis fails with
// ErrInvalidArgument and leaves the piece untouched.
func (p *Piece) Rotate(axis Axis) error {
	if !axis.valid() {
		return fmt.Errorf("piece rotate: unknown axis %d: %w", int(axis), ErrInvalidArgument)
	}
	p.X, p.Y, p.Z = rotatePos(axis, p.X, p.Y, p.Z)

	// Colours follow the same rotation as the position: the colour in
	// slot f ends up facing wherever f's unit vector was carried.
	var next [6]*Colour
	for f := Facelet(0); f < 6; f++ {
		next[faceletRotations[axis][f]] = p.colours[f]
	}
	p.colours = next
	return nil
}

// clone returns a deep copy of the piece. Colour values are shared; they
// are immutable registry entries.
func (p *Piece) clone() *Piece {
	cp := *p
	return &cp
}

// String returns the short, single-line form of the piece.
func (p *Piece) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Debug returns a long form listing the position and every colour slot.
func (p *Piece) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "piece %s", p.String())
	for f := Facelet(0); f < 6; f++ {
		fmt.Fprintf(&b, " %s:%s", f, p.colours[f])
	}
	return b.String()
}
