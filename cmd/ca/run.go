package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cellsim/internal/core"
	"cellsim/internal/engine"
	"cellsim/internal/render"
)

var (
	runSteps int
	runEvery int
	runPNG   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step a simulation without a window",
	Long: `Runs the configured rule for a fixed number of steps, logging a census
of the grid periodically. With --png the final generation is saved as an
image.`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&runSteps, "steps", 100, "Number of steps to run")
	runCmd.Flags().IntVar(&runEvery, "every", 25, "Log a census every N steps (0 = only at the end)")
	runCmd.Flags().StringVar(&runPNG, "png", "", "Write the final frame to this PNG file")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if runSteps < 0 {
		return fmt.Errorf("%w: steps must be >= 0", core.ErrInvalidConfig)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := engine.New(cfg.Engine(), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	clock := core.NewFixedStep(cfg.View.TPS)

	logger.Info("running", "rule", sim.Rule().Name(), "size", cfg.Size, "wrap", cfg.Wrap, "seed", cfg.Seed, "steps", runSteps, "tick", clock.Interval())
	for i := 0; i < runSteps; i++ {
		if _, err := sim.Step(clock.Tick()); err != nil {
			return err
		}
		if runEvery > 0 && sim.StepIndex()%uint64(runEvery) == 0 {
			logCensus(sim.Census())
		}
	}
	logCensus(sim.Census())

	if runPNG == "" {
		return nil
	}
	f, err := os.Create(runPNG)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := render.WritePNG(f, sim.Frame(), sim.Size()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	logger.Info("snapshot written", "path", runPNG)
	return nil
}

func logCensus(c engine.Census) {
	level, share := c.Dominant()
	logger.Info("census",
		"step", c.Step,
		"alive", c.Alive,
		"changed", c.Changed,
		"levels", len(c.Levels),
		"dominant", level,
		"share", fmt.Sprintf("%.3f", share),
	)
}
