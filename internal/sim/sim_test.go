package sim

import (
	"errors"
	"image/color"
	"testing"

	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
	"gridpkg/internal/objects"
)

func newRegistry(t *testing.T) *factory.Registry {
	t.Helper()
	reg := factory.New()
	if rep := reg.RegisterGridObjectTypes("objects.Rock", "objects.Flower", "objects.Walker"); !rep.OK() {
		t.Fatalf("register objects: %v", rep.Err())
	}
	if rep := reg.RegisterBoundedGridTypes("grid.BoundedGrid"); !rep.OK() {
		t.Fatalf("register grids: %v", rep.Err())
	}
	return reg
}

func testConfig() Config {
	east := grid.East
	return Config{
		Name:    "test",
		Rows:    8,
		Cols:    10,
		Bounded: true,
		Population: []Placement{
			{Type: "objects.Rock", Count: 5},
			{Type: "objects.Walker", Count: 3, Direction: &east},
			{Type: "objects.Walker", Count: 1, Color: color.RGBA{R: 200, A: 255}},
		},
	}
}

func TestResetPopulatesDeterministically(t *testing.T) {
	s := New(newRegistry(t), testConfig())
	if err := s.Reset(42); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g := s.Grid()
	if g.NumRows() != 8 || g.NumCols() != 10 {
		t.Fatalf("grid is %dx%d, want 8x10", g.NumRows(), g.NumCols())
	}
	if g.NumObjects() != 9 {
		t.Fatalf("NumObjects = %d, want 9", g.NumObjects())
	}
	first := snapshot(g)

	if err := s.Reset(42); err != nil {
		t.Fatal(err)
	}
	second := snapshot(s.Grid())
	if len(first) != len(second) {
		t.Fatalf("population differs between resets: %v vs %v", first, second)
	}
	for loc, name := range first {
		if second[loc] != name {
			t.Fatalf("reset with the same seed differs at %v: %s vs %s", loc, name, second[loc])
		}
	}

	eastbound := 0
	for _, obj := range s.Grid().Objects() {
		if w, ok := obj.(*objects.Walker); ok && w.Direction() == grid.East {
			eastbound++
		}
	}
	if eastbound < 3 {
		t.Fatalf("expected at least 3 east-facing walkers, got %d", eastbound)
	}
}

func TestStepAdvancesActors(t *testing.T) {
	s := New(newRegistry(t), Config{
		Rows: 5, Cols: 5, Bounded: true,
		Population: []Placement{{Type: "objects.Walker", Count: 2}},
	})
	if err := s.Reset(1); err != nil {
		t.Fatal(err)
	}
	s.Step()
	s.Step()
	if s.Steps() != 2 {
		t.Fatalf("Steps = %d, want 2", s.Steps())
	}
	if s.Grid().NumObjects() < 2 {
		t.Fatal("walkers disappeared")
	}
	if err := s.Reset(1); err != nil {
		t.Fatal(err)
	}
	if s.Steps() != 0 {
		t.Fatal("Reset should clear the step counter")
	}
}

func TestPopulateRejectsUnregisteredTypes(t *testing.T) {
	reg := factory.New()
	s := New(reg, Config{Rows: 3, Cols: 3, Bounded: true, Population: []Placement{{Type: "objects.Rock", Count: 1}}})
	if err := s.Reset(1); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestPopulateReportsFullGrid(t *testing.T) {
	s := New(newRegistry(t), Config{Rows: 2, Cols: 2, Bounded: true, Population: []Placement{{Type: "objects.Rock", Count: 5}}})
	if err := s.Reset(1); !errors.Is(err, ErrNoRoom) {
		t.Fatalf("expected ErrNoRoom, got %v", err)
	}
	if s.Grid() != nil {
		t.Fatal("failed Reset must not install a partial grid")
	}
}

func TestUnboundedSimulation(t *testing.T) {
	reg := newRegistry(t)
	if rep := reg.RegisterUnboundedGridTypes("grid.UnboundedGrid"); !rep.OK() {
		t.Fatal(rep.Err())
	}
	s := New(reg, Config{Rows: 4, Cols: 4, Population: []Placement{{Type: "objects.Flower", Count: 6}}})
	if err := s.Reset(9); err != nil {
		t.Fatal(err)
	}
	if s.Grid().NumRows() != -1 {
		t.Fatal("expected an unbounded grid")
	}
	for _, obj := range s.Grid().Objects() {
		loc := obj.Location()
		if loc.Row < 0 || loc.Row >= 4 || loc.Col < 0 || loc.Col >= 4 {
			t.Fatalf("object seeded outside the window at %v", loc)
		}
	}

	if err := s.UseGridType(factory.StandardBoundedGridType); !errors.Is(err, factory.ErrInvalidArgument) {
		t.Fatalf("bounded type accepted for unbounded simulation: %v", err)
	}
	if err := s.UseGridType(factory.StandardUnboundedGridType); err != nil {
		t.Fatal(err)
	}
}

func TestPlaceAt(t *testing.T) {
	reg := newRegistry(t)
	s := New(reg, Config{Rows: 3, Cols: 3, Bounded: true})
	if _, err := s.PlaceAt(reg.GridObjectTypes()[0], grid.Loc(0, 0)); err == nil {
		t.Fatal("PlaceAt before Reset should fail")
	}
	if err := s.Reset(1); err != nil {
		t.Fatal(err)
	}
	rock, err := reg.Resolve("objects.Rock")
	if err != nil {
		t.Fatal(err)
	}
	obj, err := s.PlaceAt(rock, grid.Loc(1, 1))
	if err != nil {
		t.Fatalf("PlaceAt: %v", err)
	}
	if s.Grid().ObjectAt(grid.Loc(1, 1)) != obj {
		t.Fatal("rock not placed")
	}
	if _, err := s.PlaceAt(rock, grid.Loc(1, 1)); !errors.Is(err, grid.ErrOccupied) {
		t.Fatalf("expected occupied error, got %v", err)
	}
}

func TestRebuildKeepsPreviousTypeOnFailure(t *testing.T) {
	broken := factory.NewType[*grid.BoundedGrid]([]factory.Constructor{
		factory.DimensionsFunc(func(int, int) (*grid.BoundedGrid, error) {
			return nil, errors.New("out of memory")
		}),
	}, factory.Named("BrokenGrid"))
	catalog := factory.NewCatalog()
	for _, typ := range []*factory.Type{factory.StandardBoundedGridType, broken} {
		if err := catalog.Declare(typ); err != nil {
			t.Fatal(err)
		}
	}
	reg := factory.New(factory.WithCatalog(catalog))
	if rep := reg.RegisterBoundedGridTypes("grid.BoundedGrid", "BrokenGrid"); !rep.OK() {
		t.Fatal(rep.Err())
	}

	s := New(reg, Config{Rows: 2, Cols: 2, Bounded: true})
	if err := s.Rebuild(factory.StandardBoundedGridType, 1); err != nil {
		t.Fatal(err)
	}
	before := s.Grid()

	if err := s.Rebuild(broken, 1); !errors.Is(err, factory.ErrConstructionFailed) {
		t.Fatalf("expected construction failure, got %v", err)
	}
	if s.GridType() != factory.StandardBoundedGridType {
		t.Fatalf("GridType = %v after failed rebuild, want grid.BoundedGrid", s.GridType())
	}
	if s.Grid() != before {
		t.Fatal("failed rebuild replaced the grid")
	}
}

func snapshot(g grid.Grid) map[grid.Location]string {
	out := map[grid.Location]string{}
	for _, obj := range g.Objects() {
		out[obj.Location()] = factoryName(obj)
	}
	return out
}

func factoryName(obj grid.Object) string {
	switch obj.(type) {
	case *objects.Rock:
		return "rock"
	case *objects.Walker:
		return "walker"
	case *objects.Flower:
		return "flower"
	}
	return "?"
}
