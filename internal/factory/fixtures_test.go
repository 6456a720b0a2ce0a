package factory_test

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
)

// countingGrid is a bounded grid that records Add calls.
type countingGrid struct {
	*grid.BoundedGrid
	adds int
}

func newCountingGrid(t *testing.T, rows, cols int) *countingGrid {
	t.Helper()
	g, err := grid.NewBoundedGrid(rows, cols)
	require.NoError(t, err)
	return &countingGrid{BoundedGrid: g}
}

func (g *countingGrid) Add(obj grid.Object, loc grid.Location) error {
	g.adds++
	if err := g.BoundedGrid.Add(obj, loc); err != nil {
		return err
	}
	obj.Place(g, loc)
	return nil
}

// settler places itself from its (grid, location) constructor.
type settler struct{ grid.Base }

func newSettler(g grid.Grid, loc grid.Location) (*settler, error) {
	s := &settler{}
	if err := g.Add(s, loc); err != nil {
		return nil, err
	}
	return s, nil
}

// drifter only has a no-argument constructor and expects external placement.
type drifter struct{ grid.Base }

// hermit satisfies grid.Object but declares no constructors at all.
type hermit struct{ grid.Base }

// painter has every object constructor shape.
type painter struct {
	grid.Base
	dir   grid.Direction
	color color.Color
}

// widget is not a grid or a grid object.
type widget struct{}

var errBoom = errors.New("boom")

type fixture struct {
	catalog *factory.Catalog
	reg     *factory.Registry
	logs    *bytes.Buffer

	standard *factory.Type
	flat     *factory.Type
	endless  *factory.Type
	settler  *factory.Type
	drifter  *factory.Type
	hermit   *factory.Type
	painter  *factory.Type
	widget   *factory.Type
	faulty   *factory.Type
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{catalog: factory.NewCatalog(), logs: &bytes.Buffer{}}

	f.standard = factory.NewType[*grid.BoundedGrid]([]factory.Constructor{
		factory.DimensionsFunc(grid.NewBoundedGrid),
	}, factory.Named("StandardBoundedGrid"))
	f.flat = factory.NewType[*grid.BoundedGrid]([]factory.Constructor{
		factory.NewFunc(func() (*grid.BoundedGrid, error) { return grid.NewBoundedGrid(1, 1) }),
	}, factory.Named("FlatGrid"))
	f.endless = factory.NewType[*grid.UnboundedGrid]([]factory.Constructor{
		factory.NewFunc(func() (*grid.UnboundedGrid, error) { return grid.NewUnboundedGrid(), nil }),
	}, factory.Named("EndlessGrid"))
	f.settler = factory.NewType[*settler]([]factory.Constructor{
		factory.GridLocationFunc(newSettler),
		factory.NewFunc(func() (*settler, error) { return &settler{}, nil }),
	})
	f.drifter = factory.NewType[*drifter]([]factory.Constructor{
		factory.NewFunc(func() (*drifter, error) { return &drifter{}, nil }),
	})
	f.hermit = factory.NewType[*hermit](nil)
	f.painter = factory.NewType[*painter]([]factory.Constructor{
		factory.GridLocationDirectionFunc(func(g grid.Grid, loc grid.Location, dir grid.Direction) (*painter, error) {
			p := &painter{dir: dir, color: color.White}
			return p, g.Add(p, loc)
		}),
		factory.GridLocationDirectionColorFunc(func(g grid.Grid, loc grid.Location, dir grid.Direction, c color.Color) (*painter, error) {
			p := &painter{dir: dir, color: c}
			return p, g.Add(p, loc)
		}),
	})
	f.widget = factory.NewType[*widget]([]factory.Constructor{
		factory.NewFunc(func() (*widget, error) { return &widget{}, nil }),
		factory.DimensionsFunc(func(int, int) (*widget, error) { return &widget{}, nil }),
	})
	f.faulty = factory.NewType[*grid.BoundedGrid]([]factory.Constructor{
		factory.DimensionsFunc(func(rows, cols int) (*grid.BoundedGrid, error) {
			if rows > 100 {
				panic("too many rows")
			}
			return nil, errBoom
		}),
	}, factory.Named("FaultyGrid"))

	for _, typ := range []*factory.Type{f.standard, f.flat, f.endless, f.settler, f.drifter, f.hermit, f.painter, f.widget, f.faulty} {
		require.NoError(t, f.catalog.Declare(typ))
	}

	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.reg = factory.New(factory.WithCatalog(f.catalog), factory.WithLogger(logger))
	return f
}

func names(types []*factory.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name()
	}
	return out
}
