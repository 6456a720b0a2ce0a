package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gridpkg/internal/grid"
	"gridpkg/internal/objects"
	"gridpkg/internal/render"
	"gridpkg/internal/sim"
)

func newBuildCmd(opts *options) *cobra.Command {
	var (
		steps    int
		seed     int64
		gridName string
		follow   bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the configured world, step it and print it as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, reg, err := opts.load()
			if err != nil {
				return err
			}
			s := sim.New(reg, cfg.Sim())
			if gridName != "" {
				t, err := reg.Resolve(gridName)
				if err != nil {
					return err
				}
				if err := s.UseGridType(t); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.World.Seed
			}
			if err := s.Reset(seed); err != nil {
				return err
			}
			for i := 0; i < steps; i++ {
				s.Step()
			}

			area := s.Area()
			win := render.WindowFor(s.Grid(), area.W, area.H)
			if follow {
				win = render.Follow(s.Grid(), area.W, area.H)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s after %d steps, %d objects\n",
				s.Name(), s.GridType(), s.Steps(), s.Grid().NumObjects())
			fmt.Fprint(out, render.Text(s.Grid(), win, glyph))
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 0, "steps to run before printing")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed (default: the configured seed)")
	cmd.Flags().StringVar(&gridName, "grid", "", "registered grid type to build instead of the default")
	cmd.Flags().BoolVar(&follow, "follow", false, "centre the view on the objects of an unbounded grid")
	return cmd
}

var walkerGlyphs = map[grid.Direction]rune{
	grid.North: '^', grid.NorthEast: '/', grid.East: '>', grid.SouthEast: '\\',
	grid.South: 'v', grid.SouthWest: '/', grid.West: '<', grid.NorthWest: '\\',
}

func glyph(obj grid.Object) rune {
	switch o := obj.(type) {
	case *objects.Rock:
		return '#'
	case *objects.Flower:
		return '*'
	case *objects.Walker:
		return walkerGlyphs[o.Direction().Rounded()]
	}
	return '?'
}
