//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gridpkg/internal/grid"
)

// GridPainter uploads the objects of a grid window into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a window of w*h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints the objects of g inside win onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g grid.Grid, win Window, bg color.Color, scale int) {
	if win.W != gp.w || win.H != gp.h {
		return
	}
	fillObjectsRGBA(gp.buf, g, win, bg)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
