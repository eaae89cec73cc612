package nxcube

// Axis identifies one of the three rotation axes. With white on top and
// red in front, +x points right, +y up, and +z toward the viewer. A
// positive rotation is counter-clockwise looking down the positive axis
// toward the origin (right-hand rule).
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// valid reports whether a is one of the three known axes.
func (a Axis) valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Facelet identifies a signed axis direction, the key for one of a
// piece's six colour slots. Rotation permutation and face extraction
// share this indexing scheme so the two cannot drift apart.
type Facelet int

const (
	FaceletXPos Facelet = 0
	FaceletXNeg Facelet = 1
	FaceletYPos Facelet = 2
	FaceletYNeg Facelet = 3
	FaceletZPos Facelet = 4
	FaceletZNeg Facelet = 5
)

// faceletOf returns the facelet on the given side of an axis.
func faceletOf(axis Axis, negative bool) Facelet {
	f := Facelet(2 * int(axis))
	if negative {
		f++
	}
	return f
}

func (f Facelet) String() string {
	switch f {
	case FaceletXPos:
		return "+x"
	case FaceletXNeg:
		return "-x"
	case FaceletYPos:
		return "+y"
	case FaceletYNeg:
		return "-y"
	case FaceletZPos:
		return "+z"
	case FaceletZNeg:
		return "-z"
	default:
		return "?"
	}
}

// faceletVecs holds the unit vector of each facelet direction.
var faceletVecs = [6][3]float64{
	FaceletXPos: {1, 0, 0},
	FaceletXNeg: {-1, 0, 0},
	FaceletYPos: {0, 1, 0},
	FaceletYNeg: {0, -1, 0},
	FaceletZPos: {0, 0, 1},
	FaceletZNeg: {0, 0, -1},
}

// faceletRotations[axis][old] is the facelet a colour faces after one
// positive quarter turn about axis. The table is derived from the
// position transform itself, so the colour permutation can never
// disagree with where the piece physically moved.
var faceletRotations [3][6]Facelet

func init() {
	for axis := AxisX; axis <= AxisZ; axis++ {
		for f := Facelet(0); f < 6; f++ {
			v := faceletVecs[f]
			x, y, z := rotatePos(axis, v[0], v[1], v[2])
			faceletRotations[axis][f] = vecFacelet(x, y, z)
		}
	}
}

// vecFacelet maps a unit vector back to its facelet.
func vecFacelet(x, y, z float64) Facelet {
	for f, v := range faceletVecs {
		if v[0] == x && v[1] == y && v[2] == z {
			return Facelet(f)
		}
	}
	panic("nxcube: not a unit axis vector")
}

// rotatePos applies one positive 90 degree rotation about axis:
//
//	x: (x, y, z) -> (x, -z, y)
//	y: (x, y, z) -> (z, y, -x)
//	z: (x, y, z) -> (-y, x, z)
func rotatePos(axis Axis, x, y, z float64) (float64, float64, float64) {
	switch axis {
	case AxisX:
		return x, -z, y
	case AxisY:
		return z, y, -x
	default:
		return -y, x, z
	}
}

// Face identifies one of the six cube faces in move notation.
type Face int

const (
	FaceFront Face = 0
	FaceBack  Face = 1
	FaceLeft  Face = 2
	FaceRight Face = 3
	FaceTop   Face = 4
	FaceDown  Face = 5
)

// Faces lists all six faces in declaration order.
var Faces = [6]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceTop, FaceDown}

// Letter returns the uppercase notation letter for the face.
func (f Face) Letter() string {
	switch f {
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceLeft:
		return "L"
	case FaceRight:
		return "R"
	case FaceTop:
		return "T"
	case FaceDown:
		return "D"
	default:
		return "?"
	}
}

func (f Face) String() string {
	return f.Letter()
}

// valid reports whether f names one of the six faces.
func (f Face) valid() bool {
	return f >= FaceFront && f <= FaceDown
}

// axis returns the rotation axis the face sits on and whether it is the
// negative side of that axis.
func (f Face) axis() (Axis, bool) {
	switch f {
	case FaceFront:
		return AxisZ, false
	case FaceBack:
		return AxisZ, true
	case FaceLeft:
		return AxisX, true
	case FaceRight:
		return AxisX, false
	case FaceTop:
		return AxisY, false
	default: // FaceDown
		return AxisY, true
	}
}

// facelet returns the colour slot visible on this face.
func (f Face) facelet() Facelet {
	axis, negative := f.axis()
	return faceletOf(axis, negative)
}

// faceByLetter maps an uppercase notation letter to its face.
func faceByLetter(letter byte) (Face, bool) {
	switch letter {
	case 'F':
		return FaceFront, true
	case 'B':
		return FaceBack, true
	case 'L':
		return FaceLeft, true
	case 'R':
		return FaceRight, true
	case 'T':
		return FaceTop, true
	case 'D':
		return FaceDown, true
	default:
		return 0, false
	}
}
