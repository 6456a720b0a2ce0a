package objects

import (
	"image/color"

	"gridpkg/internal/grid"
)

// Rock is an inert obstacle. It has only a no-argument constructor, so the
// factory places it after building it.
type Rock struct {
	grid.Base
}

// NewRock returns an unplaced rock.
func NewRock() (*Rock, error) { return &Rock{}, nil }

// Color returns the rock's display color.
func (r *Rock) Color() color.Color { return color.RGBA{R: 130, G: 130, B: 130, A: 255} }
