//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type panelImage = *ebiten.Image

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headingColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	entryColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 214, B: 102, A: 255}
)

// Update handles clicks on the panel, which starts at panelOffsetX. It
// returns the newly selected entry, if any.
func (p *Picker) Update(panelOffsetX int) (Entry, bool) {
	if p == nil || p.width <= 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return Entry{}, false
	}
	mx, my := ebiten.CursorPosition()
	i := p.HitTest(mx-panelOffsetX, my)
	if !p.Select(i) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Draw paints the panel at offsetX with the given height.
func (p *Picker) Draw(screen *ebiten.Image, offsetX, height int) {
	if p == nil || p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dy() != height {
		p.panel = ebiten.NewImage(p.width, height)
	}
	panel := p.panel
	panel.Fill(panelBackground)

	face := basicfont.Face7x13
	for n, ln := range p.lines {
		y := panelPadding + n*lineHeight + face.Metrics().Ascent.Ceil()
		if ln.entry < 0 {
			text.Draw(panel, ln.heading, face, panelPadding, y, headingColor)
			continue
		}
		fg := entryColor
		label := "  " + p.entries[ln.entry].Type.Name()
		if p.IsSelected(ln.entry) {
			fg = selectedColor
			label = "> " + p.entries[ln.entry].Type.Name()
		}
		text.Draw(panel, label, face, panelPadding, y, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(panel, op)
}
