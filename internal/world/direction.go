package world

// Direction identifies one of the six edges of a cell, clockwise from north-east.
type Direction uint8

const (
	NE Direction = iota
	E
	SE
	SW
	W
	NW
)

// Directions lists all six directions in clockwise order.
var Directions = [6]Direction{NE, E, SE, SW, W, NW}

// Opposite returns the direction pointing the other way across the same edge.
func (d Direction) Opposite() Direction {
	if d < 3 {
		return d + 3
	}
	return d - 3
}

// Previous returns the direction counter-clockwise of d.
func (d Direction) Previous() Direction {
	if d == NE {
		return NW
	}
	return d - 1
}

// Next returns the direction clockwise of d.
func (d Direction) Next() Direction {
	if d == NW {
		return NE
	}
	return d + 1
}

func (d Direction) String() string {
	switch d {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "?"
	}
}

// ParseDirection converts a compass abbreviation (NE, E, SE, SW, W, NW) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
