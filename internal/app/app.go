//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridpkg/internal/core"
	"gridpkg/internal/factory"
	"gridpkg/internal/render"
	"gridpkg/internal/sim"
	"gridpkg/internal/ui"
)

// Game adapts a grid simulation to the ebiten.Game interface.
type Game struct {
	sim     *sim.Simulation
	painter *render.GridPainter
	picker  *ui.Picker
	clock   *core.FixedStep
	log     *slog.Logger

	win        render.Window
	background color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for a simulation that has already been Reset.
func New(s *sim.Simulation, cfg *Config, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	area := s.Area()
	win := render.WindowFor(s.Grid(), area.W, area.H)
	return &Game{
		sim:        s,
		painter:    render.NewGridPainter(win.W, win.H),
		picker:     ui.NewPicker(s.Registry(), cfg.Panel),
		clock:      core.NewFixedStep(cfg.Steps),
		log:        log,
		win:        win,
		background: color.Black,
		scale:      cfg.Scale,
		seed:       cfg.Seed,
	}
}

// Reset rebuilds the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.sim.Reset(seed); err != nil {
		g.log.Error("reset failed", "seed", seed, "err", err)
	}
	g.clock.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handlePan()

	gridW := g.win.W * g.scale
	if e, ok := g.picker.Update(gridW); ok {
		if err := choose(g.sim, e, g.seed); err != nil {
			g.log.Warn("selection rejected", "type", e.Type.Name(), "err", err)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e, ok := g.picker.Selected(factory.GridObject); ok {
			x, y := ebiten.CursorPosition()
			if x < gridW {
				if _, err := placeAtPixel(g.sim, e.Type, g.win, x, y, g.scale); err != nil {
					g.log.Warn("placement failed", "type", e.Type.Name(), "err", err)
				}
			}
		}
	}

	steps := g.clock.Due(time.Now())
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) handlePan() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.win = pan(g.sim, g.win, -1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.win = pan(g.sim, g.win, 1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.win = pan(g.sim, g.win, 0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.win = pan(g.sim, g.win, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.win = render.Follow(g.sim.Grid(), g.win.W, g.win.H)
	}
}

// Draw renders the grid window and the picker panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.win, g.background, g.scale)
	_, h := g.Layout(0, 0)
	g.picker.Draw(screen, g.win.W*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.win.W*g.scale + g.picker.Width(), g.win.H * g.scale
}
