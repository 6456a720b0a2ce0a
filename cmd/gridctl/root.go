package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"gridpkg/internal/config"
	"gridpkg/internal/factory"
)

type options struct {
	configFile string
	verbose    bool
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stderr: stderr}
	root := &cobra.Command{
		Use:          "gridctl",
		Short:        "Inspect grid types and build worlds from a config file",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"YAML world configuration (default: built-in world)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log discarded type choices")

	root.AddCommand(newTypesCmd(opts), newBuildCmd(opts), newCatalogCmd(opts))
	return root
}

// load reads the configuration and returns a registry populated from it.
func (o *options) load() (config.Config, *factory.Registry, error) {
	cfg := config.Default()
	if o.configFile != "" {
		var err error
		if cfg, err = config.Load(o.configFile); err != nil {
			return config.Config{}, nil, err
		}
	}
	level := slog.LevelError
	if o.verbose {
		level = slog.LevelWarn
	}
	log := slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: level}))
	reg := factory.New(factory.WithLogger(log))
	if _, err := cfg.Apply(reg); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, reg, nil
}
