package app

import (
	"fmt"

	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
	"gridpkg/internal/render"
	"gridpkg/internal/sim"
	"gridpkg/internal/ui"
)

// choose applies a picker selection. Grid selections rebuild the world with
// the chosen type; object selections only change what clicks place.
func choose(s *sim.Simulation, e ui.Entry, seed int64) error {
	switch e.Category {
	case factory.BoundedGrid, factory.UnboundedGrid:
		if (e.Category == factory.BoundedGrid) != s.Bounded() {
			return fmt.Errorf("%w: %s grid selected for a simulation that wants the other kind",
				factory.ErrInvalidArgument, e.Category)
		}
		return s.Rebuild(e.Type, seed)
	}
	return nil
}

// placeAtPixel places a new object of t under screen pixel (x, y).
func placeAtPixel(s *sim.Simulation, t *factory.Type, win render.Window, x, y, scale int) (grid.Object, error) {
	if scale <= 0 {
		scale = 1
	}
	if x < 0 || y < 0 || x >= win.W*scale || y >= win.H*scale {
		return nil, fmt.Errorf("%w: pixel (%d, %d) is outside the grid", factory.ErrInvalidArgument, x, y)
	}
	return s.PlaceAt(t, win.At(x/scale, y/scale))
}

// pan shifts an unbounded window; bounded windows never move.
func pan(s *sim.Simulation, win render.Window, dRow, dCol int) render.Window {
	if s.Bounded() {
		return win
	}
	win.Origin = grid.Loc(win.Origin.Row+dRow, win.Origin.Col+dCol)
	return win
}
