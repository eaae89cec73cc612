package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// ErrInvalidArgument reports a bad caller input: a cube size below 2,
	// an unknown rotation axis, or a notation token outside the legal set
	// for the cube's size. A failed call never modifies cube state.
	ErrInvalidArgument = errors.New("nxcube: invalid argument")

	// ErrInvariant reports an internal logic defect: a rotation or face
	// extraction produced a coordinate outside the derived coordinate
	// system. It should be unreachable.
	ErrInvariant = errors.New("nxcube: state invariant violated")
)
