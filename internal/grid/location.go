package grid

import "fmt"

// Location identifies a cell by row and column.
type Location struct {
	Row int
	Col int
}

// Loc is shorthand for Location{Row: row, Col: col}.
func Loc(row, col int) Location { return Location{Row: row, Col: col} }

// String formats the location as (row, col).
func (l Location) String() string { return fmt.Sprintf("(%d, %d)", l.Row, l.Col) }

// Less orders locations row-major.
func (l Location) Less(o Location) bool {
	if l.Row != o.Row {
		return l.Row < o.Row
	}
	return l.Col < o.Col
}

// Neighbor returns the adjacent location in the compass direction nearest to dir.
func (l Location) Neighbor(dir Direction) Location {
	switch dir.Rounded() {
	case North:
		return Location{l.Row - 1, l.Col}
	case NorthEast:
		return Location{l.Row - 1, l.Col + 1}
	case East:
		return Location{l.Row, l.Col + 1}
	case SouthEast:
		return Location{l.Row + 1, l.Col + 1}
	case South:
		return Location{l.Row + 1, l.Col}
	case SouthWest:
		return Location{l.Row + 1, l.Col - 1}
	case West:
		return Location{l.Row, l.Col - 1}
	default:
		return Location{l.Row - 1, l.Col - 1}
	}
}

// Direction is a compass heading in degrees, clockwise from north.
type Direction int

const (
	North     Direction = 0
	NorthEast Direction = 45
	East      Direction = 90
	SouthEast Direction = 135
	South     Direction = 180
	SouthWest Direction = 225
	West      Direction = 270
	NorthWest Direction = 315
)

// Compass lists the eight principal directions clockwise from north.
var Compass = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Normalized maps d into [0, 360).
func (d Direction) Normalized() Direction {
	return Direction((int(d)%360 + 360) % 360)
}

// Rounded snaps d to the nearest of the eight compass directions.
func (d Direction) Rounded() Direction {
	n := int(d.Normalized())
	return Direction(((n + 22) / 45 % 8) * 45)
}

// Right returns the heading turned clockwise by deg degrees.
func (d Direction) Right(deg int) Direction { return Direction(int(d) + deg).Normalized() }

// Left returns the heading turned counter-clockwise by deg degrees.
func (d Direction) Left(deg int) Direction { return Direction(int(d) - deg).Normalized() }

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return d.Right(180) }

func (d Direction) String() string {
	switch d.Normalized() {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	}
	return fmt.Sprintf("%d°", int(d.Normalized()))
}
