// Package sim steps the objects of a factory-built grid.
package sim

import (
	"fmt"

	"gridpkg/internal/core"
	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
	"gridpkg/internal/objects"
	pcore "gridpkg/pkg/core"
)

// Config describes the world a Simulation builds on Reset.
type Config struct {
	Name string
	// Rows and Cols size bounded grids and the seeding window of unbounded ones.
	Rows, Cols int
	Bounded    bool
	Population []Placement
}

// Simulation owns a grid built through the registry and advances its actors.
type Simulation struct {
	cfg      Config
	reg      *factory.Registry
	gridType *factory.Type

	g     grid.Grid
	rng   *pcore.RNG
	steps int
}

var _ core.Sim = (*Simulation)(nil)

// New returns a Simulation; call Reset to build its grid.
func New(reg *factory.Registry, cfg Config) *Simulation {
	if cfg.Name == "" {
		cfg.Name = "grid"
	}
	return &Simulation{cfg: cfg, reg: reg, rng: pcore.NewRNG(0)}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.cfg.Name }

// Grid returns the current grid, or nil before the first Reset.
func (s *Simulation) Grid() grid.Grid { return s.g }

// Bounded reports whether Reset builds a bounded grid.
func (s *Simulation) Bounded() bool { return s.cfg.Bounded }

// Area returns the bounded dimensions or the unbounded seeding window.
func (s *Simulation) Area() core.Size { return core.Size{W: s.cfg.Cols, H: s.cfg.Rows} }

// Steps returns the number of steps since the last Reset.
func (s *Simulation) Steps() int { return s.steps }

// Registry returns the registry the simulation builds from.
func (s *Simulation) Registry() *factory.Registry { return s.reg }

// UseGridType makes Reset build grids of t instead of the registry default.
// t must be registered in the category matching the simulation's boundedness.
func (s *Simulation) UseGridType(t *factory.Type) error {
	list := s.reg.UnboundedGridTypes()
	if s.cfg.Bounded {
		list = s.reg.BoundedGridTypes()
	}
	for _, candidate := range list {
		if candidate == t {
			s.gridType = t
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a registered grid type", factory.ErrInvalidArgument, t)
}

// Rebuild switches to grid type t and resets with seed. When the reset fails
// the previous grid type and grid stay in place.
func (s *Simulation) Rebuild(t *factory.Type, seed int64) error {
	prev := s.gridType
	if err := s.UseGridType(t); err != nil {
		return err
	}
	if err := s.Reset(seed); err != nil {
		s.gridType = prev
		return err
	}
	return nil
}

// GridType returns the type Reset builds.
func (s *Simulation) GridType() *factory.Type {
	if s.gridType != nil {
		return s.gridType
	}
	if s.cfg.Bounded {
		return s.reg.DefaultBoundedType()
	}
	return s.reg.DefaultUnboundedType()
}

// Reset builds a fresh grid and populates it deterministically from seed.
func (s *Simulation) Reset(seed int64) error {
	var (
		g   grid.Grid
		err error
	)
	if s.cfg.Bounded {
		g, err = factory.ConstructBoundedGrid(s.GridType(), s.cfg.Rows, s.cfg.Cols)
	} else {
		g, err = factory.ConstructUnboundedGrid(s.GridType())
	}
	if err != nil {
		return err
	}
	rng := pcore.NewRNG(seed)
	if err := Populate(s.reg, g, s.Area(), s.cfg.Population, rng); err != nil {
		return err
	}
	s.g, s.rng, s.steps = g, rng, 0
	return nil
}

// Step lets every actor in the grid act once, in row-major order of their
// positions at the start of the step. Objects removed earlier in the same
// step are skipped.
func (s *Simulation) Step() {
	if s.g == nil {
		return
	}
	for _, obj := range s.g.Objects() {
		if obj.Grid() != s.g {
			continue
		}
		if actor, ok := obj.(objects.Actor); ok {
			actor.Act(s.rng)
		}
	}
	s.steps++
}

// PlaceAt builds an object of the registered type t at loc in the current grid.
func (s *Simulation) PlaceAt(t *factory.Type, loc grid.Location) (grid.Object, error) {
	if s.g == nil {
		return nil, fmt.Errorf("%w: simulation has no grid", factory.ErrConstructionFailed)
	}
	return Build(t, s.g, loc, nil, nil, s.rng)
}
