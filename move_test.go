package nxcube

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		token string
		size  int
		want  Move
	}{
		{"R", 3, Move{Axis: AxisX, Turn: TurnCW}},
		{"R'", 3, Move{Axis: AxisX, Turn: TurnCCW}},
		{"R2", 3, Move{Axis: AxisX, Turn: TurnHalf}},
		{"L", 3, Move{Axis: AxisX, Negative: true, Turn: TurnCW}},
		{"T", 3, Move{Axis: AxisY, Turn: TurnCW}},
		{"D'", 3, Move{Axis: AxisY, Negative: true, Turn: TurnCCW}},
		{"F", 3, Move{Axis: AxisZ, Turn: TurnCW}},
		{"B2", 3, Move{Axis: AxisZ, Negative: true, Turn: TurnHalf}},
		{"f", 3, Move{Axis: AxisZ, Depth: 1, Turn: TurnCW}},
		{"l'", 4, Move{Axis: AxisX, Negative: true, Depth: 1, Turn: TurnCCW}},
		{"ff", 4, Move{Axis: AxisZ, Depth: 2, Turn: TurnCW}},
		{"rw", 4, Move{Axis: AxisX, Depth: 1, Wide: true, Turn: TurnCW}},
		{"rrw'", 5, Move{Axis: AxisX, Depth: 2, Wide: true, Turn: TurnCCW}},
		{"ddw2", 5, Move{Axis: AxisY, Negative: true, Depth: 2, Wide: true, Turn: TurnHalf}},
		{"x", 3, Move{Axis: AxisX, Whole: true, Turn: TurnCW}},
		{"y'", 2, Move{Axis: AxisY, Whole: true, Turn: TurnCCW}},
		{"z2", 3, Move{Axis: AxisZ, Whole: true, Turn: TurnHalf}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.token, tc.size)
		if err != nil {
			t.Errorf("ParseMove(%q, %d) failed: %v", tc.token, tc.size, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q, %d) = %+v, want %+v", tc.token, tc.size, got, tc.want)
		}
	}
}

func TestParseMoveRejects(t *testing.T) {
	cases := []struct {
		token string
		size  int
	}{
		{"", 3},
		{"Q", 3},
		{"U", 3},      // up face is T in this notation
		{"R2'", 3},    // only one angle suffix
		{"Rw", 3},     // wide marker needs a lowercase depth
		{"xw", 3},     // no wide whole-cube rotations
		{"f", 2},      // size 2 has no inner layers
		{"ff", 3},     // deepest inner layer for size 3 is depth 1
		{"fff", 4},    // depth 3 exceeds size-2
		{"fb", 4},     // mixed face letters in a depth run
		{"R T", 3},    // two tokens where one is expected
		{"w", 4},      // bare wide marker
		{"'", 3}, // bare angle
	}
	for _, tc := range cases {
		if _, err := ParseMove(tc.token, tc.size); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseMove(%q, %d): expected ErrInvalidArgument, got %v", tc.token, tc.size, err)
		}
	}
}

func TestQuarterTurns(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"R", 3},  // clockwise seen from a positive face
		{"R'", 1}, // counter-clockwise from a positive face
		{"L", 1},  // clockwise from a negative face
		{"L'", 3},
		{"R2", 2},
		{"x", 3}, // whole-cube tokens follow the positive face
		{"x'", 1},
	}
	for _, tc := range cases {
		m, err := ParseMove(tc.token, 3)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", tc.token, err)
		}
		if got := m.quarterTurns(); got != tc.want {
			t.Errorf("%q: quarterTurns = %d, want %d", tc.token, got, tc.want)
		}
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		for _, token := range LegalMoves(size) {
			m, err := ParseMove(token, size)
			if err != nil {
				t.Fatalf("legal token %q rejected for size %d: %v", token, size, err)
			}
			if m.String() != token {
				t.Errorf("size %d: %q parsed and reprinted as %q", size, token, m.String())
			}
		}
	}
}

func TestLegalMovesCount(t *testing.T) {
	// Per face: 3 outer tokens plus 6 tokens (inner and wide, 3 angles
	// each) per addressable depth; plus 9 whole-cube tokens.
	for _, size := range []int{2, 3, 4, 7} {
		want := 6*(3+6*(size-2)) + 9
		if got := len(LegalMoves(size)); got != want {
			t.Errorf("size %d: %d legal tokens, want %d", size, got, want)
		}
	}
}

func TestParseSequence(t *testing.T) {
	moves, err := ParseSequence("R T' f2  x", 3)
	if err != nil {
		t.Fatalf("ParseSequence failed: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(moves))
	}
	if _, err := ParseSequence("R bogus", 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for invalid sequence, got %v", err)
	}
}
