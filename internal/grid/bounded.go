package grid

import "fmt"

// BoundedGrid stores objects in a fixed-size grid in row-major order.
type BoundedGrid struct {
	rows, cols int
	cells      []Object
	count      int
}

// NewBoundedGrid allocates a grid with the given dimensions, both of which
// must be positive.
func NewBoundedGrid(rows, cols int) (*BoundedGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &BoundedGrid{rows: rows, cols: cols, cells: make([]Object, rows*cols)}, nil
}

// NumRows returns the number of rows.
func (g *BoundedGrid) NumRows() int { return g.rows }

// NumCols returns the number of columns.
func (g *BoundedGrid) NumCols() int { return g.cols }

// Index returns the linear slice index for loc.
func (g *BoundedGrid) Index(loc Location) int { return loc.Row*g.cols + loc.Col }

// IsValid reports whether loc lies inside the grid.
func (g *BoundedGrid) IsValid(loc Location) bool {
	return loc.Row >= 0 && loc.Row < g.rows && loc.Col >= 0 && loc.Col < g.cols
}

// IsEmpty reports whether loc is inside the grid and unoccupied.
func (g *BoundedGrid) IsEmpty(loc Location) bool {
	return g.IsValid(loc) && g.cells[g.Index(loc)] == nil
}

// Add places obj at loc.
func (g *BoundedGrid) Add(obj Object, loc Location) error {
	if obj == nil {
		return ErrNilObject
	}
	if obj.Grid() != nil {
		return ErrAlreadyPlaced
	}
	if !g.IsValid(loc) {
		return ErrInvalidLocation
	}
	idx := g.Index(loc)
	if g.cells[idx] != nil {
		return ErrOccupied
	}
	g.cells[idx] = obj
	g.count++
	obj.Place(g, loc)
	return nil
}

// Remove takes obj out of the grid.
func (g *BoundedGrid) Remove(obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	loc := obj.Location()
	if !g.IsValid(loc) || g.cells[g.Index(loc)] != obj {
		return ErrNotInGrid
	}
	g.cells[g.Index(loc)] = nil
	g.count--
	obj.Place(nil, loc)
	return nil
}

// ObjectAt returns the object at loc, or nil.
func (g *BoundedGrid) ObjectAt(loc Location) Object {
	if !g.IsValid(loc) {
		return nil
	}
	return g.cells[g.Index(loc)]
}

// Objects returns the held objects in row-major order.
func (g *BoundedGrid) Objects() []Object {
	out := make([]Object, 0, g.count)
	for _, obj := range g.cells {
		if obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// NumObjects returns the number of held objects.
func (g *BoundedGrid) NumObjects() int { return g.count }
