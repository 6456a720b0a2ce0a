// Package config loads the YAML file that names the grid and grid-object
// types an application offers and describes the initial world.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gridpkg/internal/factory"
	"gridpkg/internal/grid"
	"gridpkg/internal/sim"
)

// Grids lists grid type names by category and optionally overrides the defaults.
type Grids struct {
	Bounded          []string `yaml:"bounded"`
	Unbounded        []string `yaml:"unbounded"`
	DefaultBounded   string   `yaml:"default_bounded"`
	DefaultUnbounded string   `yaml:"default_unbounded"`
}

// World sizes and seeds the initial grid.
type World struct {
	Bounded bool  `yaml:"bounded"`
	Rows    int   `yaml:"rows"`
	Cols    int   `yaml:"cols"`
	Seed    int64 `yaml:"seed"`
}

// Placement asks for Count objects of Type. Direction is in degrees and
// Color is a #rrggbb or #rrggbbaa string; both are optional.
type Placement struct {
	Type      string `yaml:"type"`
	Count     int    `yaml:"count"`
	Direction *int   `yaml:"direction,omitempty"`
	Color     string `yaml:"color,omitempty"`
}

// Config is the top-level configuration document.
type Config struct {
	Name       string      `yaml:"name"`
	Grids      Grids       `yaml:"grids"`
	Objects    []string    `yaml:"objects"`
	World      World       `yaml:"world"`
	Population []Placement `yaml:"population"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Name: "gridpkg",
		Grids: Grids{
			Bounded:   []string{factory.StandardBoundedGridType.Name()},
			Unbounded: []string{factory.StandardUnboundedGridType.Name()},
		},
		Objects: []string{"objects.Flower", "objects.Rock", "objects.Walker"},
		World:   World{Bounded: true, Rows: 48, Cols: 64, Seed: 42},
		Population: []Placement{
			{Type: "objects.Rock", Count: 60},
			{Type: "objects.Walker", Count: 12},
		},
	}
}

// Load reads and parses the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the world and population sections.
func (c Config) Validate() error {
	var errs []error
	if c.World.Rows <= 0 || c.World.Cols <= 0 {
		errs = append(errs, fmt.Errorf("world: rows and cols must be positive, got %dx%d", c.World.Rows, c.World.Cols))
	}
	for i, p := range c.Population {
		if p.Type == "" {
			errs = append(errs, fmt.Errorf("population %d: type is required", i))
		}
		if p.Count < 0 {
			errs = append(errs, fmt.Errorf("population %d: count must not be negative", i))
		}
		if p.Color != "" {
			if _, err := ParseColor(p.Color); err != nil {
				errs = append(errs, fmt.Errorf("population %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Apply registers the configured types with reg and installs the configured
// defaults. Bad type names are reported, not fatal; a bad default is.
func (c Config) Apply(reg *factory.Registry) ([]factory.Report, error) {
	reports := []factory.Report{
		reg.RegisterBoundedGridTypes(c.Grids.Bounded...),
		reg.RegisterUnboundedGridTypes(c.Grids.Unbounded...),
		reg.RegisterGridObjectTypes(c.Objects...),
	}
	if name := c.Grids.DefaultBounded; name != "" {
		if err := setDefault(reg, name, reg.SetDefaultBoundedType); err != nil {
			return reports, err
		}
	}
	if name := c.Grids.DefaultUnbounded; name != "" {
		if err := setDefault(reg, name, reg.SetDefaultUnboundedType); err != nil {
			return reports, err
		}
	}
	return reports, nil
}

func setDefault(reg *factory.Registry, name string, set func(*factory.Type) error) error {
	t, err := reg.Resolve(name)
	if err != nil {
		return fmt.Errorf("%w: default grid: %w", factory.ErrInvalidArgument, err)
	}
	return set(t)
}

// Sim converts the world and population sections into a simulation config.
func (c Config) Sim() sim.Config {
	out := sim.Config{
		Name:    c.Name,
		Rows:    c.World.Rows,
		Cols:    c.World.Cols,
		Bounded: c.World.Bounded,
	}
	for _, p := range c.Population {
		sp := sim.Placement{Type: p.Type, Count: p.Count}
		if p.Direction != nil {
			dir := grid.Direction(*p.Direction).Normalized()
			sp.Direction = &dir
		}
		if p.Color != "" {
			// Validate already rejected malformed colors.
			sp.Color, _ = ParseColor(p.Color)
		}
		out.Population = append(out.Population, sp)
	}
	return out
}

// ParseColor parses #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
