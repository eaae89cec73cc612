package nxcube

// Colour is one of the six face colours, an (id, label) pair.
// Colours are immutable; pieces share them by pointer from the registry
// below, and a nil *Colour marks an unpainted (interior-facing) facelet.
type Colour struct {
	ID    uint8
	Label string
}

// The colour registry. Labels are single characters so face grids and
// rendered layouts stay aligned for any cube size.
var (
	White  = &Colour{ID: 0, Label: "W"}
	Red    = &Colour{ID: 1, Label: "R"}
	Blue   = &Colour{ID: 2, Label: "B"}
	Green  = &Colour{ID: 3, Label: "G"}
	Orange = &Colour{ID: 4, Label: "O"}
	Yellow = &Colour{ID: 5, Label: "Y"}
)

// Palette lists all registry colours in id order.
var Palette = [6]*Colour{White, Red, Blue, Green, Orange, Yellow}

func (c *Colour) String() string {
	if c == nil {
		return "-"
	}
	return c.Label
}

// solvedColours maps each facelet direction to the colour painted there
// on a freshly built cube: blue right, green left, white top, yellow down,
// red front, orange back.
var solvedColours = [6]*Colour{
	FaceletXPos: Blue,
	FaceletXNeg: Green,
	FaceletYPos: White,
	FaceletYNeg: Yellow,
	FaceletZPos: Red,
	FaceletZNeg: Orange,
}
