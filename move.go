package nxcube

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Turn is the requested visual rotation of a move, as seen from the face
// being turned.
type Turn int

const (
	TurnCW   Turn = 1  // quarter turn clockwise (no suffix)
	TurnCCW  Turn = -1 // quarter turn counter-clockwise (' suffix)
	TurnHalf Turn = 2  // 180 degrees (2 suffix)
)

// Move is a parsed, size-validated notation token.
//
// The grammar is <face><depth><angle>: an uppercase face letter turns the
// outer layer; a lowercase letter repeated n times turns the single layer
// n deep behind that face; a lowercase run followed by "w" turns every
// layer from the face through that depth; the letters x, y and z turn the
// whole cube about an axis. The suffix selects the angle: none for
// clockwise, "'" for counter-clockwise, "2" for a half turn.
type Move struct {
	Axis     Axis // rotation axis
	Negative bool // face is on the negative side of the axis
	Whole    bool // whole-cube rotation, depth ignored
	Depth    int  // 0 = outer layer, n = n layers behind the face
	Wide     bool // include every layer from 0 through Depth
	Turn     Turn
}

// quarterTurns converts the visual turn into the number of positive
// 90 degree rotations to apply. Clockwise seen from a negative face is
// the positive direction; from a positive face it is three positive
// quarter turns.
func (m Move) quarterTurns() int {
	switch m.Turn {
	case TurnHalf:
		return 2
	case TurnCCW:
		if m.Negative {
			return 3
		}
		return 1
	default: // TurnCW
		if m.Negative {
			return 1
		}
		return 3
	}
}

// String reconstructs the notation token for the move.
func (m Move) String() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case TurnHalf:
		suffix = "2"
	}
	if m.Whole {
		return m.Axis.String() + suffix
	}
	face := faceOn(m.Axis, m.Negative)
	if m.Depth == 0 {
		return face.Letter() + suffix
	}
	token := strings.Repeat(strings.ToLower(face.Letter()), m.Depth)
	if m.Wide {
		token += "w"
	}
	return token + suffix
}

// faceOn returns the face sitting on the given side of an axis.
func faceOn(axis Axis, negative bool) Face {
	for _, f := range Faces {
		a, n := f.axis()
		if a == axis && n == negative {
			return f
		}
	}
	return FaceFront
}

// Token grammar. The lexer keeps uppercase face letters, lowercase depth
// runs, axis letters, the wide marker and the angle suffix as distinct
// token types; everything else is a lex error.
var moveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Outer", Pattern: `[FBLRTD]`},
	{Name: "AxisTok", Pattern: `[xyz]`},
	{Name: "Wide", Pattern: `w`},
	{Name: "Inner", Pattern: `[fblrtd]+`},
	{Name: "Angle", Pattern: `['2]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type rawMove struct {
	Outer string `parser:"( @Outer"`
	Axis  string `parser:"| @AxisTok"`
	Inner string `parser:"| @Inner )"`
	Wide  bool   `parser:"@Wide?"`
	Angle string `parser:"@Angle?"`
}

type rawSequence struct {
	Moves []*rawMove `parser:"@@*"`
}

var moveParser = participle.MustBuild[rawSequence](
	participle.Lexer(moveLexer),
	participle.Elide("Whitespace"),
)

// ParseMove parses a single notation token and validates it against the
// given cube size. Tokens outside the legal set for that size fail with
// ErrInvalidArgument.
func ParseMove(token string, size int) (Move, error) {
	seq, err := moveParser.ParseString("", token)
	if err != nil {
		return Move{}, fmt.Errorf("notation %q: %w", token, ErrInvalidArgument)
	}
	if len(seq.Moves) != 1 {
		return Move{}, fmt.Errorf("notation %q: expected a single move token: %w", token, ErrInvalidArgument)
	}
	return fromRaw(seq.Moves[0], token, size)
}

// ParseSequence parses a whitespace-separated sequence of tokens. Any
// invalid token fails the whole sequence.
func ParseSequence(s string, size int) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field, size)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func fromRaw(raw *rawMove, token string, size int) (Move, error) {
	m := Move{Turn: TurnCW}
	switch raw.Angle {
	case "'":
		m.Turn = TurnCCW
	case "2":
		m.Turn = TurnHalf
	}

	switch {
	case raw.Axis != "":
		if raw.Wide {
			return Move{}, fmt.Errorf("notation %q: wide marker on a whole-cube rotation: %w", token, ErrInvalidArgument)
		}
		m.Whole = true
		switch raw.Axis {
		case "x":
			m.Axis = AxisX
		case "y":
			m.Axis = AxisY
		default:
			m.Axis = AxisZ
		}
		return m, nil

	case raw.Outer != "":
		if raw.Wide {
			return Move{}, fmt.Errorf("notation %q: wide marker requires a lowercase depth: %w", token, ErrInvalidArgument)
		}
		face, _ := faceByLetter(raw.Outer[0])
		m.Axis, m.Negative = face.axis()
		return m, nil

	default:
		// Lowercase depth run: every character must repeat the same face
		// letter, and the deepest addressable layer is one short of the
		// opposite face.
		for i := 1; i < len(raw.Inner); i++ {
			if raw.Inner[i] != raw.Inner[0] {
				return Move{}, fmt.Errorf("notation %q: mixed face letters in depth run: %w", token, ErrInvalidArgument)
			}
		}
		face, _ := faceByLetter(raw.Inner[0] - 'a' + 'A')
		depth := len(raw.Inner)
		if depth > size-2 {
			return Move{}, fmt.Errorf("notation %q: depth %d exceeds the addressable range for a size-%d cube: %w",
				token, depth, size, ErrInvalidArgument)
		}
		m.Axis, m.Negative = face.axis()
		m.Depth = depth
		m.Wide = raw.Wide
		return m, nil
	}
}

// LegalMoves enumerates every legal notation token for a cube of the
// given size, in a deterministic order.
func LegalMoves(size int) []string {
	suffixes := []string{"", "'", "2"}
	var tokens []string
	for _, f := range Faces {
		upper := f.Letter()
		lower := strings.ToLower(upper)
		for _, s := range suffixes {
			tokens = append(tokens, upper+s)
		}
		for depth := 1; depth <= size-2; depth++ {
			run := strings.Repeat(lower, depth)
			for _, s := range suffixes {
				tokens = append(tokens, run+s)
			}
			for _, s := range suffixes {
				tokens = append(tokens, run+"w"+s)
			}
		}
	}
	for _, axis := range []string{"x", "y", "z"} {
		for _, s := range suffixes {
			tokens = append(tokens, axis+s)
		}
	}
	return tokens
}
