//go:build ebiten

package app

import (
	"time"

	"cellsim/internal/core"
	"cellsim/internal/engine"
	"cellsim/internal/render"
	"cellsim/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an engine simulation to the ebiten.Game interface.
type Game struct {
	sim     *engine.Simulation
	painter *render.GridPainter
	overlay *ui.Overlay
	clock   *core.FixedStep
	logger  *log.Logger

	frame []byte

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The clock hands each
// step a simulated elapsed time at tps ticks per second.
func New(sim *engine.Simulation, scale, tps int, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size()),
		overlay: ui.NewOverlay(sim, scale),
		clock:   core.NewFixedStep(tps),
		logger:  logger,
		frame:   sim.Frame(),
		scale:   scale,
		seed:    sim.Config().Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.ResetWithSeed(seed)
	g.clock.Reset()
	g.frame = g.sim.Frame()
	g.tickOnce = false
	g.logger.Info("reset", "rule", g.sim.Rule().Name(), "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		frame, err := g.sim.Step(g.clock.Tick())
		if err != nil {
			// Keep showing the last good generation.
			g.paused = true
			g.logger.Error("simulation paused", "err", err)
			return nil
		}
		g.frame = frame
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.scale)
	g.overlay.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.sim.Size()
	return n * g.scale, n * g.scale
}
