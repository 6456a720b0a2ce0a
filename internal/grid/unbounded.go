package grid

import "sort"

// UnboundedGrid holds objects at arbitrary integer coordinates.
type UnboundedGrid struct {
	cells map[Location]Object
}

// NewUnboundedGrid returns an empty unbounded grid.
func NewUnboundedGrid() *UnboundedGrid {
	return &UnboundedGrid{cells: map[Location]Object{}}
}

// NumRows returns -1.
func (g *UnboundedGrid) NumRows() int { return -1 }

// NumCols returns -1.
func (g *UnboundedGrid) NumCols() int { return -1 }

// IsValid always reports true.
func (g *UnboundedGrid) IsValid(Location) bool { return true }

// IsEmpty reports whether loc is unoccupied.
func (g *UnboundedGrid) IsEmpty(loc Location) bool {
	_, ok := g.cells[loc]
	return !ok
}

// Add places obj at loc.
func (g *UnboundedGrid) Add(obj Object, loc Location) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.Grid() != nil {
		return ErrAlreadyPlaced
	}
	if _, ok := g.cells[loc]; ok {
		return ErrOccupied
	}
	g.cells[loc] = obj
	obj.Place(g, loc)
	return nil
}

// Remove takes obj out of the grid.
func (g *UnboundedGrid) Remove(obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	loc := obj.Location()
	if cur, ok := g.cells[loc]; !ok || cur != obj {
		return ErrNotInGrid
	}
	delete(g.cells, loc)
	obj.Place(nil, loc)
	return nil
}

// ObjectAt returns the object at loc, or nil.
func (g *UnboundedGrid) ObjectAt(loc Location) Object { return g.cells[loc] }

// Objects returns the held objects in row-major order.
func (g *UnboundedGrid) Objects() []Object {
	locs := make([]Location, 0, len(g.cells))
	for loc := range g.cells {
		locs = append(locs, loc)
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })
	out := make([]Object, len(locs))
	for i, loc := range locs {
		out[i] = g.cells[loc]
	}
	return out
}

// NumObjects returns the number of held objects.
func (g *UnboundedGrid) NumObjects() int { return len(g.cells) }

// Extent returns the smallest rectangle covering every occupied location. ok
// is false when the grid is empty.
func (g *UnboundedGrid) Extent() (min, max Location, ok bool) {
	for loc := range g.cells {
		if !ok {
			min, max, ok = loc, loc, true
			continue
		}
		min.Row = minInt(min.Row, loc.Row)
		min.Col = minInt(min.Col, loc.Col)
		max.Row = maxInt(max.Row, loc.Row)
		max.Col = maxInt(max.Col, loc.Col)
	}
	return min, max, ok
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
