package maze

// Side indexes the four walls of a cell.
type Side int

// Sides in storage order: +row, +col, -row, -col.
const (
	South Side = iota
	East
	North
	West
)

// Sides lists every side in storage order.
var Sides = [4]Side{South, East, North, West}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case South:
		return "South"
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Walls holds the four-sided wall state of a cell, indexed by Side.
// true means the wall is present (blocked).
type Walls [4]bool

// NewWalls builds a Walls value from its four sides.
func NewWalls(south, east, north, west bool) Walls {
	return Walls{south, east, north, west}
}

// Has reports whether the wall on side s is present.
func (w Walls) Has(s Side) bool {
	return w[s]
}

// With returns a copy of w with side s set to blocked.
func (w Walls) With(s Side, blocked bool) Walls {
	w[s] = blocked
	return w
}

// All reports whether every side is blocked.
func (w Walls) All() bool {
	return w[South] && w[East] && w[North] && w[West]
}
