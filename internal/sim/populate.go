package sim

import (
	"errors"
	"fmt"
	"image/color"

	"gridpkg/internal/core"
	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
	pcore "gridpkg/pkg/core"
)

// ErrNoRoom is returned when a population entry cannot find an empty cell.
var ErrNoRoom = errors.New("sim: no empty location left")

// ErrNotRegistered is returned when a population names a type the registry
// has not admitted as a grid object.
var ErrNotRegistered = errors.New("sim: grid-object type not registered")

// Placement asks for Count objects of the named type at random empty cells.
type Placement struct {
	Type  string
	Count int
	// Direction fixes the heading for types with a direction constructor;
	// nil picks a random compass direction.
	Direction *grid.Direction
	// Color selects the four-argument constructor when the type has one.
	Color color.Color
}

// Populate builds every placement into g, choosing cells inside area at
// random. Unbounded grids use area as their seeding window.
func Populate(reg *factory.Registry, g grid.Grid, area core.Size, placements []Placement, rng *pcore.RNG) error {
	if g.NumRows() > 0 {
		area = core.Size{W: g.NumCols(), H: g.NumRows()}
	}
	for _, p := range placements {
		typ, err := registeredObjectType(reg, p.Type)
		if err != nil {
			return err
		}
		for i := 0; i < p.Count; i++ {
			loc, ok := randomEmpty(g, area, rng)
			if !ok {
				return fmt.Errorf("%w: placing %s #%d", ErrNoRoom, p.Type, i+1)
			}
			if _, err := Build(typ, g, loc, p.Direction, p.Color, rng); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build constructs one object of typ at loc, using the richest constructor
// the request allows: the colored one when c is set and available, then the
// directed one, then the plain (grid, location) path.
func Build(typ *factory.Type, g grid.Grid, loc grid.Location, dir *grid.Direction, c color.Color, rng *pcore.RNG) (grid.Object, error) {
	heading := func() grid.Direction {
		if dir != nil {
			return *dir
		}
		return grid.Compass[rng.IntN(len(grid.Compass))]
	}
	switch {
	case c != nil && factory.HasFourArgConstructor(typ):
		return factory.ConstructColoredGridObject(typ, g, loc, heading(), c)
	case typ.HasConstructor(factory.GridLocationDirection):
		return factory.ConstructDirectedGridObject(typ, g, loc, heading())
	default:
		return factory.ConstructGridObject(typ, g, loc)
	}
}

func registeredObjectType(reg *factory.Registry, name string) (*factory.Type, error) {
	for _, typ := range reg.GridObjectTypes() {
		if typ.Name() == name {
			return typ, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
}

func randomEmpty(g grid.Grid, area core.Size, rng *pcore.RNG) (grid.Location, bool) {
	total := area.W * area.H
	if total <= 0 {
		return grid.Location{}, false
	}
	// Random probes first, then a scan from a random offset.
	for i := 0; i < 8; i++ {
		idx := rng.IntN(total)
		loc := grid.Loc(idx/area.W, idx%area.W)
		if g.IsEmpty(loc) {
			return loc, true
		}
	}
	start := rng.IntN(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		loc := grid.Loc(idx/area.W, idx%area.W)
		if g.IsEmpty(loc) {
			return loc, true
		}
	}
	return grid.Location{}, false
}
