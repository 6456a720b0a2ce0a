// Package ui holds the type picker panel drawn beside the grid.
package ui

import "gridpkg/internal/factory"

const (
	panelPadding = 8
	lineHeight   = 16
)

// Entry is one selectable type in the picker.
type Entry struct {
	Category factory.Category
	Type     *factory.Type
}

type line struct {
	heading string
	entry   int
}

// Picker lists the registered types by category and tracks one selection
// per category.
type Picker struct {
	reg      *factory.Registry
	width    int
	entries  []Entry
	lines    []line
	selected map[factory.Category]int

	panel panelImage
}

// NewPicker builds a picker panel of the given pixel width over reg.
func NewPicker(reg *factory.Registry, width int) *Picker {
	if width < 0 {
		width = 0
	}
	p := &Picker{reg: reg, width: width, selected: map[factory.Category]int{}}
	p.Refresh()
	return p
}

// Width returns the panel width in pixels.
func (p *Picker) Width() int { return p.width }

// Refresh reloads the registered types. Selections are kept by type.
func (p *Picker) Refresh() {
	prev := map[factory.Category]*factory.Type{}
	for c := range p.selected {
		if e, ok := p.Selected(c); ok {
			prev[c] = e.Type
		}
	}
	p.entries = p.entries[:0]
	p.lines = p.lines[:0]
	p.selected = map[factory.Category]int{}
	for _, c := range []factory.Category{factory.BoundedGrid, factory.UnboundedGrid, factory.GridObject} {
		types := p.reg.Types(c)
		if len(types) == 0 {
			continue
		}
		p.lines = append(p.lines, line{heading: c.String(), entry: -1})
		for _, t := range types {
			idx := len(p.entries)
			p.entries = append(p.entries, Entry{Category: c, Type: t})
			p.lines = append(p.lines, line{entry: idx})
			if prev[c] == t {
				p.selected[c] = idx
			}
		}
	}
}

// Entries returns the selectable entries in display order.
func (p *Picker) Entries() []Entry { return append([]Entry(nil), p.entries...) }

// Select marks entry i as the selection for its category.
func (p *Picker) Select(i int) bool {
	if i < 0 || i >= len(p.entries) {
		return false
	}
	p.selected[p.entries[i].Category] = i
	return true
}

// Selected returns the selection for category c.
func (p *Picker) Selected(c factory.Category) (Entry, bool) {
	i, ok := p.selected[c]
	if !ok || i >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// IsSelected reports whether entry i is the selection of its category.
func (p *Picker) IsSelected(i int) bool {
	if i < 0 || i >= len(p.entries) {
		return false
	}
	sel, ok := p.selected[p.entries[i].Category]
	return ok && sel == i
}

// HitTest maps a point relative to the panel to an entry index, or -1.
func (p *Picker) HitTest(x, y int) int {
	if x < 0 || x >= p.width || y < panelPadding {
		return -1
	}
	n := (y - panelPadding) / lineHeight
	if n >= len(p.lines) {
		return -1
	}
	return p.lines[n].entry
}
