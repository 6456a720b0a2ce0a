// Package grid defines the grid and grid-object capabilities along with the
// baseline bounded and unbounded grid implementations.
package grid

import "errors"

var (
	// ErrInvalidLocation is returned when a location lies outside the grid.
	ErrInvalidLocation = errors.New("grid: invalid location")
	// ErrOccupied is returned when adding to a location that already holds an object.
	ErrOccupied = errors.New("grid: location occupied")
	// ErrNotInGrid is returned when removing an object the grid does not hold.
	ErrNotInGrid = errors.New("grid: object not in grid")
	// ErrNilObject is returned when a nil object is added.
	ErrNilObject = errors.New("grid: nil object")
	// ErrAlreadyPlaced is returned when adding an object that is already in a grid.
	ErrAlreadyPlaced = errors.New("grid: object already placed")
	// ErrInvalidDimensions is returned for a bounded grid without positive rows and cols.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
)

// Grid is a two-dimensional container of located objects. Unbounded grids
// report -1 for NumRows and NumCols.
type Grid interface {
	NumRows() int
	NumCols() int
	IsValid(loc Location) bool
	IsEmpty(loc Location) bool
	Add(obj Object, loc Location) error
	Remove(obj Object) error
	ObjectAt(loc Location) Object
	// Objects returns the held objects in row-major location order.
	Objects() []Object
	NumObjects() int
}

// Object is an entity that can occupy a location within a grid.
type Object interface {
	Grid() Grid
	Location() Location
	// Place records the grid and location the object occupies. Grids call it
	// from Add and Remove; other callers should go through the grid.
	Place(g Grid, loc Location)
}

// Base implements Object and is meant to be embedded by concrete object types.
type Base struct {
	grid Grid
	loc  Location
}

// Grid returns the grid the object is in, or nil.
func (b *Base) Grid() Grid { return b.grid }

// Location returns the object's location.
func (b *Base) Location() Location { return b.loc }

// Place records the object's placement.
func (b *Base) Place(g Grid, loc Location) {
	b.grid = g
	b.loc = loc
}

// InGrid reports whether the object currently belongs to a grid.
func (b *Base) InGrid() bool { return b.grid != nil }

// MoveTo relocates obj within its grid.
func MoveTo(obj Object, loc Location) error {
	g := obj.Grid()
	if g == nil {
		return ErrNotInGrid
	}
	if !g.IsValid(loc) {
		return ErrInvalidLocation
	}
	if !g.IsEmpty(loc) {
		return ErrOccupied
	}
	if err := g.Remove(obj); err != nil {
		return err
	}
	return g.Add(obj, loc)
}
