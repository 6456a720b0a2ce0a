//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gridpkg/internal/app"
	"gridpkg/internal/config"
	"gridpkg/internal/factory"
	_ "gridpkg/internal/objects"
	"gridpkg/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	world := config.Default()
	if cfg.File != "" {
		var err error
		if world, err = config.Load(cfg.File); err != nil {
			log.Error("loading config", "path", cfg.File, "err", err)
			os.Exit(1)
		}
	}

	cfg.SeedFrom(flag.CommandLine, world.World.Seed)

	reg := factory.New(factory.WithLogger(log))
	if _, err := world.Apply(reg); err != nil {
		log.Error("applying config", "err", err)
		os.Exit(1)
	}

	s := sim.New(reg, world.Sim())
	if err := s.Reset(cfg.Seed); err != nil {
		log.Error("building world", "err", err)
		os.Exit(1)
	}

	game := app.New(s, cfg, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridpkg - " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop", "err", err)
		os.Exit(1)
	}
}
