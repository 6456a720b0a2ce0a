package objects

import (
	"image/color"

	"gridpkg/internal/grid"
	"gridpkg/pkg/core"
)

var defaultWalkerColor = color.RGBA{R: 230, G: 200, B: 60, A: 255}

// Walker moves forward each step, turning when its way is blocked. It can
// drop a Flower behind it.
type Walker struct {
	grid.Base
	dir   grid.Direction
	color color.Color
	steps int
}

// NewWalker creates a north-facing walker at loc in g.
func NewWalker(g grid.Grid, loc grid.Location) (*Walker, error) {
	return NewColoredWalker(g, loc, grid.North, defaultWalkerColor)
}

// NewDirectedWalker creates a walker facing dir at loc in g.
func NewDirectedWalker(g grid.Grid, loc grid.Location, dir grid.Direction) (*Walker, error) {
	return NewColoredWalker(g, loc, dir, defaultWalkerColor)
}

// NewColoredWalker creates a walker facing dir with color c at loc in g.
func NewColoredWalker(g grid.Grid, loc grid.Location, dir grid.Direction, c color.Color) (*Walker, error) {
	w := &Walker{dir: dir.Normalized(), color: c}
	if err := g.Add(w, loc); err != nil {
		return nil, err
	}
	return w, nil
}

// Direction returns the walker's heading.
func (w *Walker) Direction() grid.Direction { return w.dir }

// Color returns the walker's display color.
func (w *Walker) Color() color.Color { return w.color }

// Steps returns how many times the walker has moved.
func (w *Walker) Steps() int { return w.steps }

// Act moves one cell forward if possible; otherwise it turns 45 or 90
// degrees in a random direction. Every fourth move leaves a flower behind.
func (w *Walker) Act(rng *core.RNG) {
	g := w.Grid()
	if g == nil {
		return
	}
	from := w.Location()
	next := from.Neighbor(w.dir)
	if !g.IsValid(next) || !g.IsEmpty(next) {
		turn := 45 * (1 + rng.IntN(2))
		if rng.Bool() {
			w.dir = w.dir.Left(turn)
		} else {
			w.dir = w.dir.Right(turn)
		}
		return
	}
	if err := grid.MoveTo(w, next); err != nil {
		return
	}
	w.steps++
	if w.steps%4 == 0 {
		_, _ = NewFlower(g, from)
	}
}
