package app

import "flag"

// Config represents the command-line parameters for the GUI.
type Config struct {
	File  string
	Scale int
	TPS   int
	Steps int
	Seed  int64
	Panel int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, Steps: 10, Seed: 42, Panel: 180}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML world configuration")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the type picker in pixels")
}

// SeedFrom adopts the world file's seed unless -seed was given on fs.
func (c *Config) SeedFrom(fs *flag.FlagSet, fileSeed int64) {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if !set {
		c.Seed = fileSeed
	}
}
