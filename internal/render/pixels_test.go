package render

import (
	"image/color"
	"testing"

	"gridpkg/internal/grid"
)

type dot struct {
	grid.Base
	c color.Color
}

func (d *dot) Color() color.Color { return d.c }

type plain struct{ grid.Base }

func TestFillObjectsRGBA(t *testing.T) {
	g := newBounded(t, 2, 3)
	if err := g.Add(&dot{c: color.RGBA{R: 10, G: 20, B: 30, A: 255}}, grid.Loc(1, 2)); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(&plain{}, grid.Loc(0, 0)); err != nil {
		t.Fatal(err)
	}
	win := WindowFor(g, 99, 99)
	if win.W != 3 || win.H != 2 {
		t.Fatalf("window = %+v, want 3x2", win)
	}
	buf := make([]byte, 4*win.W*win.H)
	fillObjectsRGBA(buf, g, win, color.Black)

	if got := buf[4*5 : 4*5+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Fatalf("colored pixel = %v", got)
	}
	if got := buf[0:4]; got[0] != Fallback.R || got[3] != 255 {
		t.Fatalf("fallback pixel = %v", got)
	}
	if got := buf[4:8]; got[0] != 0 || got[3] != 255 {
		t.Fatalf("background pixel = %v", got)
	}
}

func TestUnboundedWindowClips(t *testing.T) {
	g := grid.NewUnboundedGrid()
	for _, loc := range []grid.Location{grid.Loc(-1, 0), grid.Loc(0, 0), grid.Loc(3, 3), grid.Loc(50, 50)} {
		if err := g.Add(&plain{}, loc); err != nil {
			t.Fatal(err)
		}
	}
	win := WindowFor(g, 4, 4)
	want := "#...\n....\n....\n...#\n"
	if got := Text(g, win, nil); got != want {
		t.Fatalf("Text =\n%s\nwant\n%s", got, want)
	}

	win.Origin = grid.Loc(-1, 0)
	if !win.Contains(grid.Loc(-1, 0)) || win.Contains(grid.Loc(3, 3)) {
		t.Fatal("shifted window bounds are wrong")
	}
	if loc := win.At(0, 1); loc != grid.Loc(0, 0) {
		t.Fatalf("At(0, 1) = %v", loc)
	}
}

func TestFollowCentresOnObjects(t *testing.T) {
	g := grid.NewUnboundedGrid()
	win := Follow(g, 4, 4)
	if win.Origin != grid.Loc(0, 0) {
		t.Fatalf("empty grid window origin = %v", win.Origin)
	}
	for _, loc := range []grid.Location{grid.Loc(10, 10), grid.Loc(20, 30)} {
		if err := g.Add(&plain{}, loc); err != nil {
			t.Fatal(err)
		}
	}
	win = Follow(g, 4, 4)
	if win.Origin != grid.Loc(13, 18) || win.W != 4 || win.H != 4 {
		t.Fatalf("Follow = %+v, want origin (13, 18) 4x4", win)
	}

	b := newBounded(t, 3, 5)
	if got := Follow(b, 9, 9); got != (Window{W: 5, H: 3}) {
		t.Fatalf("bounded Follow = %+v", got)
	}
}

func TestTextGlyphs(t *testing.T) {
	g := newBounded(t, 1, 3)
	if err := g.Add(&dot{}, grid.Loc(0, 1)); err != nil {
		t.Fatal(err)
	}
	got := Text(g, WindowFor(g, 0, 0), func(grid.Object) rune { return 'd' })
	if got != ".d.\n" {
		t.Fatalf("Text = %q", got)
	}
}

func newBounded(t *testing.T, rows, cols int) *grid.BoundedGrid {
	t.Helper()
	g, err := grid.NewBoundedGrid(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	return g
}
