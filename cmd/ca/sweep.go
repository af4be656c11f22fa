package main

import (
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"cellsim/internal/config"
	"cellsim/internal/core"
	"cellsim/internal/engine"
)

var (
	sweepSteps  int
	sweepJobs   int
	sweepStates []int
	sweepThresh []int
	sweepTopN   int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare cyclic parameter sets",
	Long: `Runs the cyclic rule once for every (states, threshold) pair and ranks
the results by how much of the grid is still changing at the end. Grids that
settle into spirals keep a high activity with no dominant level.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 200, "Steps to simulate per parameter set")
	sweepCmd.Flags().IntVar(&sweepJobs, "jobs", runtime.NumCPU(), "Parameter sets evaluated concurrently")
	sweepCmd.Flags().IntSliceVar(&sweepStates, "states", []int{4, 8, 12, 16, 20}, "State counts to try")
	sweepCmd.Flags().IntSliceVar(&sweepThresh, "thresholds", []int{1, 2, 3}, "Thresholds to try")
	sweepCmd.Flags().IntVar(&sweepTopN, "top", 5, "Number of results to print")
}

type paramSet struct {
	states    int
	threshold int
}

func (p paramSet) String() string {
	return fmt.Sprintf("states=%d threshold=%d", p.states, p.threshold)
}

type scenarioResult struct {
	params   paramSet
	activity float64
	dominant int
	share    float64
	levels   int
	err      error
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if sweepSteps <= 0 {
		return fmt.Errorf("%w: steps must be > 0", core.ErrInvalidConfig)
	}

	var sets []paramSet
	for _, states := range sweepStates {
		for _, threshold := range sweepThresh {
			sets = append(sets, paramSet{states: states, threshold: threshold})
		}
	}

	logger.Info("sweeping", "sets", len(sets), "jobs", sweepJobs, "steps", sweepSteps, "size", cfg.Size)
	start := time.Now()
	all := sweep(cfg, sets, sweepSteps, sweepJobs)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(sweepTopN, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < sweepTopN; i++ {
		res := all[i]
		if res.err != nil {
			continue
		}
		fmt.Printf("%2d) activity=%.3f levels=%d dominant=%d share=%.3f %s\n",
			i+1, res.activity, res.levels, res.dominant, res.share, res.params)
	}
	for _, res := range all {
		if res.err != nil {
			logger.Warn("parameter set failed", "params", res.params.String(), "err", res.err)
		}
	}
	return nil
}

// sweep evaluates every set on its own simulation and returns the results
// ordered by activity, highest first. Failed sets sort last.
func sweep(base config.Config, sets []paramSet, steps, jobs int) []scenarioResult {
	if jobs <= 0 {
		jobs = 1
	}
	work := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range work {
				results <- runScenario(base, params, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			work <- params
		}
		close(work)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if (a.err == nil) != (b.err == nil) {
			return a.err == nil
		}
		if a.activity != b.activity {
			return a.activity > b.activity
		}
		if a.params.states != b.params.states {
			return a.params.states < b.params.states
		}
		return a.params.threshold < b.params.threshold
	})
	return all
}

func runScenario(base config.Config, params paramSet, steps int) scenarioResult {
	res := scenarioResult{params: params}

	cfg := base.Engine()
	cfg.Rule = "cyclic"
	cfg.Params = map[string]string{
		"states":    strconv.Itoa(params.states),
		"threshold": strconv.Itoa(params.threshold),
	}
	// Parallelism comes from the pool, not from inside each simulation.
	cfg.Workers = 1

	sim, err := engine.New(cfg)
	if err != nil {
		res.err = err
		return res
	}
	clock := core.NewFixedStep(base.View.TPS)
	for i := 0; i < steps; i++ {
		if _, err := sim.Step(clock.Tick()); err != nil {
			res.err = err
			return res
		}
	}

	c := sim.Census()
	res.activity = float64(c.Changed) / float64(c.Cells)
	res.dominant, res.share = c.Dominant()
	res.levels = len(c.Levels)
	return res
}
