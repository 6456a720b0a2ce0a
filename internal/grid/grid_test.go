package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pebble struct{ Base }

func newBounded(t *testing.T, rows, cols int) *BoundedGrid {
	t.Helper()
	g, err := NewBoundedGrid(rows, cols)
	require.NoError(t, err)
	return g
}

func TestBoundedGridAddRemove(t *testing.T) {
	g := newBounded(t, 3, 4)
	require.Equal(t, 3, g.NumRows())
	require.Equal(t, 4, g.NumCols())

	p := &pebble{}
	require.NoError(t, g.Add(p, Loc(1, 2)))
	require.Same(t, g, p.Grid())
	require.Equal(t, Loc(1, 2), p.Location())
	require.Equal(t, 1, g.NumObjects())
	require.False(t, g.IsEmpty(Loc(1, 2)))

	require.ErrorIs(t, g.Add(&pebble{}, Loc(1, 2)), ErrOccupied)
	require.ErrorIs(t, g.Add(&pebble{}, Loc(3, 0)), ErrInvalidLocation)
	require.ErrorIs(t, g.Add(nil, Loc(0, 0)), ErrNilObject)

	require.NoError(t, g.Remove(p))
	require.Nil(t, p.Grid())
	require.True(t, g.IsEmpty(Loc(1, 2)))
	require.ErrorIs(t, g.Remove(p), ErrNotInGrid)
}

func TestBoundedGridObjectsRowMajor(t *testing.T) {
	g := newBounded(t, 2, 2)
	a, b, c := &pebble{}, &pebble{}, &pebble{}
	require.NoError(t, g.Add(c, Loc(1, 1)))
	require.NoError(t, g.Add(a, Loc(0, 0)))
	require.NoError(t, g.Add(b, Loc(0, 1)))

	got := g.Objects()
	require.Equal(t, []Object{a, b, c}, got)
}

func TestBoundedGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, -3}, {0, 4}, {4, 0}, {-1, -1}} {
		g, err := NewBoundedGrid(dims[0], dims[1])
		require.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
		require.Nil(t, g)
	}
	g := newBounded(t, 1, 1)
	require.Equal(t, 1, g.NumRows())
}

func TestAddRejectsPlacedObject(t *testing.T) {
	bounded := newBounded(t, 3, 3)
	p := &pebble{}
	require.NoError(t, bounded.Add(p, Loc(0, 0)))
	require.ErrorIs(t, bounded.Add(p, Loc(1, 1)), ErrAlreadyPlaced)
	require.Equal(t, 1, bounded.NumObjects())
	require.True(t, bounded.IsEmpty(Loc(1, 1)))

	require.NoError(t, bounded.Remove(p))
	require.Zero(t, bounded.NumObjects())
	require.True(t, bounded.IsEmpty(Loc(0, 0)))

	unbounded := NewUnboundedGrid()
	require.NoError(t, unbounded.Add(p, Loc(5, 5)))
	require.ErrorIs(t, unbounded.Add(p, Loc(6, 6)), ErrAlreadyPlaced)
	require.ErrorIs(t, bounded.Add(p, Loc(2, 2)), ErrAlreadyPlaced)
	require.Equal(t, 1, unbounded.NumObjects())
	require.NoError(t, unbounded.Remove(p))
	require.Zero(t, unbounded.NumObjects())
	require.Nil(t, unbounded.ObjectAt(Loc(5, 5)))
}

func TestUnboundedGrid(t *testing.T) {
	g := NewUnboundedGrid()
	require.Equal(t, -1, g.NumRows())
	require.True(t, g.IsValid(Loc(-100, 1000)))

	far := &pebble{}
	near := &pebble{}
	require.NoError(t, g.Add(far, Loc(50, -7)))
	require.NoError(t, g.Add(near, Loc(-2, 3)))
	require.ErrorIs(t, g.Add(&pebble{}, Loc(50, -7)), ErrOccupied)

	require.Equal(t, []Object{near, far}, g.Objects())

	min, max, ok := g.Extent()
	require.True(t, ok)
	require.Equal(t, Loc(-2, -7), min)
	require.Equal(t, Loc(50, 3), max)

	require.NoError(t, g.Remove(far))
	require.Equal(t, 1, g.NumObjects())
}

func TestMoveTo(t *testing.T) {
	g := newBounded(t, 3, 3)
	p := &pebble{}
	require.ErrorIs(t, MoveTo(p, Loc(0, 0)), ErrNotInGrid)

	require.NoError(t, g.Add(p, Loc(1, 1)))
	require.NoError(t, MoveTo(p, Loc(1, 1).Neighbor(North)))
	require.Equal(t, Loc(0, 1), p.Location())
	require.Same(t, p, g.ObjectAt(Loc(0, 1)).(*pebble))
	require.True(t, g.IsEmpty(Loc(1, 1)))

	require.ErrorIs(t, MoveTo(p, Loc(-1, 1)), ErrInvalidLocation)
}

func TestDirection(t *testing.T) {
	require.Equal(t, East, North.Right(90))
	require.Equal(t, NorthWest, North.Left(45))
	require.Equal(t, South, North.Reverse())
	require.Equal(t, North, Direction(350).Rounded())
	require.Equal(t, NorthEast, Direction(30).Rounded())
	require.Equal(t, Direction(10), Direction(-350).Normalized())
	require.Equal(t, "SW", SouthWest.String())

	require.Equal(t, Loc(2, 1), Loc(1, 1).Neighbor(South))
	require.Equal(t, Loc(0, 0), Loc(1, 1).Neighbor(NorthWest))
}
