package core

import "gridpkg/internal/grid"

// Size describes the dimensions of a grid view.
type Size struct {
	W int
	H int
}

// Sim defines the contract the GUI drives: a named simulation over a grid
// that can be reseeded and stepped.
type Sim interface {
	Name() string
	Grid() grid.Grid
	Reset(seed int64) error
	Step()
}
