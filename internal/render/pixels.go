package render

import (
	"image/color"

	"gridpkg/internal/grid"
)

// Fallback is used for objects that do not report a color.
var Fallback = color.RGBA{R: 230, G: 230, B: 230, A: 255}

type colored interface {
	Color() color.Color
}

// Window is the rectangle of grid locations drawn to the screen. Origin is
// the location shown at the top-left pixel.
type Window struct {
	Origin grid.Location
	W, H   int
}

// Contains reports whether loc falls inside the window.
func (w Window) Contains(loc grid.Location) bool {
	r, c := loc.Row-w.Origin.Row, loc.Col-w.Origin.Col
	return r >= 0 && r < w.H && c >= 0 && c < w.W
}

// Pixel returns the pixel coordinates of loc relative to the window.
func (w Window) Pixel(loc grid.Location) (x, y int) {
	return loc.Col - w.Origin.Col, loc.Row - w.Origin.Row
}

// At returns the grid location under pixel (x, y).
func (w Window) At(x, y int) grid.Location {
	return grid.Loc(w.Origin.Row+y, w.Origin.Col+x)
}

// WindowFor returns the whole grid for bounded grids. Unbounded grids use
// the fallback size anchored at the origin.
func WindowFor(g grid.Grid, fallbackW, fallbackH int) Window {
	if g != nil && g.NumRows() > 0 && g.NumCols() > 0 {
		return Window{W: g.NumCols(), H: g.NumRows()}
	}
	return Window{W: fallbackW, H: fallbackH}
}

type extent interface {
	Extent() (min, max grid.Location, ok bool)
}

// Follow centres a w*h window on the occupied part of an unbounded grid.
// Bounded and empty grids get WindowFor.
func Follow(g grid.Grid, w, h int) Window {
	win := WindowFor(g, w, h)
	e, ok := g.(extent)
	if !ok || g.NumRows() > 0 {
		return win
	}
	lo, hi, ok := e.Extent()
	if !ok {
		return win
	}
	row, col := (lo.Row+hi.Row)/2, (lo.Col+hi.Col)/2
	win.Origin = grid.Loc(row-win.H/2, col-win.W/2)
	return win
}

// fillObjectsRGBA clears buf to bg and paints one pixel per object inside win.
func fillObjectsRGBA(buf []byte, g grid.Grid, win Window, bg color.Color) {
	r, gr, b, a := bg.RGBA()
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = uint8(r >> 8)
		buf[i+1] = uint8(gr >> 8)
		buf[i+2] = uint8(b >> 8)
		buf[i+3] = uint8(a >> 8)
	}
	if g == nil {
		return
	}
	for _, obj := range g.Objects() {
		loc := obj.Location()
		if !win.Contains(loc) {
			continue
		}
		var col color.Color = Fallback
		if c, ok := obj.(colored); ok && c.Color() != nil {
			col = c.Color()
		}
		x, y := win.Pixel(loc)
		base := (y*win.W + x) * 4
		if base+3 >= len(buf) {
			continue
		}
		cr, cg, cb, ca := col.RGBA()
		buf[base+0] = uint8(cr >> 8)
		buf[base+1] = uint8(cg >> 8)
		buf[base+2] = uint8(cb >> 8)
		buf[base+3] = uint8(ca >> 8)
	}
}
