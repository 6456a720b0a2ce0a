package objects

import (
	"image/color"

	"gridpkg/internal/grid"
	"gridpkg/pkg/core"
)

// flowerLifetime is the number of steps a flower takes to fade completely.
const flowerLifetime = 40

// Flower places itself when constructed and slowly fades.
type Flower struct {
	grid.Base
	age int
}

// NewFlower creates a flower at loc in g.
func NewFlower(g grid.Grid, loc grid.Location) (*Flower, error) {
	f := &Flower{}
	if err := g.Add(f, loc); err != nil {
		return nil, err
	}
	return f, nil
}

// Age returns the number of steps the flower has been alive.
func (f *Flower) Age() int { return f.age }

// Act ages the flower and removes it from its grid once it has faded.
func (f *Flower) Act(*core.RNG) {
	f.age++
	if f.age >= flowerLifetime && f.InGrid() {
		_ = f.Grid().Remove(f)
	}
}

// Color blends from bright to dark green as the flower ages.
func (f *Flower) Color() color.Color {
	fade := f.age * 160 / flowerLifetime
	if fade > 160 {
		fade = 160
	}
	return color.RGBA{R: 60, G: uint8(220 - fade), B: 70, A: 255}
}
