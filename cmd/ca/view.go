//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"cellsim/internal/app"
	"cellsim/internal/engine"
)

var (
	viewScale int
	viewTPS   int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer",
	Long: `Opens a window showing the simulation.

Controls:
  space  run/pause
  enter  resume
  n      single step
  r      reset with the same seed
  s      reset with a new seed
  tab    toggle status panel
  1      toggle changed-cell mask
  q/esc  quit`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVar(&viewScale, "scale", 0, "Pixel scale multiplier (default from config)")
	viewCmd.Flags().IntVar(&viewTPS, "tps", 0, "Ticks per second (default from config)")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if viewScale > 0 {
		cfg.View.Scale = viewScale
	}
	if viewTPS > 0 {
		cfg.View.TPS = viewTPS
	}

	sim, err := engine.New(cfg.Engine(), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	game := app.New(sim, cfg.View.Scale, cfg.View.TPS, logger)

	ebiten.SetWindowTitle("cellsim - " + sim.Rule().Name())
	ebiten.SetTPS(cfg.View.TPS)
	ebiten.SetWindowSize(cfg.Size*cfg.View.Scale, cfg.Size*cfg.View.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
