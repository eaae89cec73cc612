package nxcube

import (
	"errors"
	"testing"
)

func paintedPiece() *Piece {
	p := &Piece{X: 1, Y: 1, Z: 1}
	for f := Facelet(0); f < 6; f++ {
		p.colours[f] = Palette[f]
	}
	return p
}

func TestPieceRotatePosition(t *testing.T) {
	cases := []struct {
		axis    Axis
		x, y, z float64
	}{
		{AxisX, 1, -3, 2},
		{AxisY, 3, 2, -1},
		{AxisZ, -2, 1, 3},
	}
	for _, tc := range cases {
		p := &Piece{X: 1, Y: 2, Z: 3}
		if err := p.Rotate(tc.axis); err != nil {
			t.Fatalf("Rotate(%s) failed: %v", tc.axis, err)
		}
		if p.X != tc.x || p.Y != tc.y || p.Z != tc.z {
			t.Errorf("Rotate(%s): got %s, want (%g, %g, %g)", tc.axis, p, tc.x, tc.y, tc.z)
		}
	}
}

func TestPieceRotateRoundTrip(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		p := paintedPiece()
		want := *p
		for i := 0; i < 4; i++ {
			if err := p.Rotate(axis); err != nil {
				t.Fatalf("Rotate(%s) failed: %v", axis, err)
			}
		}
		if *p != want {
			t.Errorf("four %s-turns should be the identity, got %s", axis, p.Debug())
		}
	}
}

func TestPieceColourTracking(t *testing.T) {
	// One positive x-turn carries +y to +z and -z to +y, matching the
	// position transform (x, y, z) -> (x, -z, y).
	p := paintedPiece()
	up := p.ColourAt(FaceletYPos)
	back := p.ColourAt(FaceletZNeg)
	if err := p.Rotate(AxisX); err != nil {
		t.Fatal(err)
	}
	if p.ColourAt(FaceletZPos) != up {
		t.Errorf("+y colour should face +z after an x-turn, got %s", p.ColourAt(FaceletZPos))
	}
	if p.ColourAt(FaceletYPos) != back {
		t.Errorf("-z colour should face +y after an x-turn, got %s", p.ColourAt(FaceletYPos))
	}
}

func TestPieceRotateUnknownAxis(t *testing.T) {
	p := paintedPiece()
	before := *p
	err := p.Rotate(Axis(7))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if *p != before {
		t.Error("failed rotate should not modify the piece")
	}
}

func TestFaceletRotationsAreBijections(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		var seen [6]bool
		for f := Facelet(0); f < 6; f++ {
			seen[faceletRotations[axis][f]] = true
		}
		for f, ok := range seen {
			if !ok {
				t.Errorf("axis %s: facelet %s has no preimage", axis, Facelet(f))
			}
		}
	}
}
