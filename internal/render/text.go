package render

import (
	"strings"

	"gridpkg/internal/grid"
)

// Glyph picks the character drawn for an object.
type Glyph func(grid.Object) rune

// Text draws the window as rows of runes, '.' marking empty cells.
func Text(g grid.Grid, win Window, glyph Glyph) string {
	rows := make([][]rune, win.H)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(".", win.W))
	}
	if g != nil {
		for _, obj := range g.Objects() {
			loc := obj.Location()
			if !win.Contains(loc) {
				continue
			}
			x, y := win.Pixel(loc)
			r := '#'
			if glyph != nil {
				r = glyph(obj)
			}
			rows[y][x] = r
		}
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
