package nxcube

import (
	"fmt"
	"sort"
)

// The algorithm catalogue: named move sequences stored as opaque
// notation strings and executed token by token through the normal
// notation resolver. All entries use outer-layer moves only, so they are
// legal for every cube size.
var algorithms = map[string]string{
	"sexy":         "R T R' T'",
	"sledgehammer": "R' F R F'",
	"tperm":        "R T R' T' R' F R2 T' R' T' R T R' F'",
	"checkerboard": "R2 L2 T2 D2 F2 B2",
	"cube_in_cube": "F L F T' R T F2 L2 T' L' B D' B' L2 T",
	"superflip":    "T R2 F B R B2 R T2 L B2 R T' D' R2 F R' L B2 T2 F2",
}

// Algorithms returns the catalogue names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Algorithm returns the notation sequence registered under name.
func Algorithm(name string) (string, bool) {
	seq, ok := algorithms[name]
	return seq, ok
}

// ApplyAlgorithm executes a catalogue entry on the cube. Unknown names
// fail with ErrInvalidArgument before any piece moves.
func (c *Cube) ApplyAlgorithm(name string) error {
	seq, ok := algorithms[name]
	if !ok {
		return fmt.Errorf("unknown algorithm %q: %w", name, ErrInvalidArgument)
	}
	return c.Apply(seq)
}
