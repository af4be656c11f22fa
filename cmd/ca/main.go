// ca runs cellular automaton rules on a square grid.
//
// Usage:
//
//	ca rules                - List registered rules and their parameters
//	ca run                  - Step a simulation headlessly, optionally saving a PNG
//	ca sweep                - Compare cyclic parameter sets in a worker pool
//	ca view                 - Open the interactive viewer (needs -tags ebiten)
//
// Global flags:
//
//	--config <path>  - YAML configuration file
//	--rule <name>    - Rule to run (default from config: life)
//	--size <n>       - Grid side length
//	--seed <value>   - Seed for randomized initialization
//	--workers <n>    - Goroutines used per step
//	--wrap           - Toroidal edges
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cellsim/internal/config"

	// Import rules to register them
	_ "cellsim/internal/sims/briansbrain"
	_ "cellsim/internal/sims/cyclic"
	_ "cellsim/internal/sims/elementary"
	_ "cellsim/internal/sims/life"
	_ "cellsim/internal/sims/wave"
)

var (
	// Global flags
	flagConfig  string
	flagRule    string
	flagSize    int
	flagSeed    int64
	flagWorkers int
	flagWrap    bool
	flagDebug   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "cellsim",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ca",
	Short: "Cellular automata on a square grid",
	Long: `ca steps cellular automaton rules over an N×N grid with a Moore
neighborhood, either on a torus or with hard edges.

Examples:
  ca rules
  ca run --rule cyclic --steps 500 --png cyclic.png
  ca sweep --steps 200
  ca view --rule wave`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (default: search ~/.cellsim, ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagRule, "rule", "", "Rule name (see 'ca rules')")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Grid side length")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for initialization")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Goroutines per step")
	rootCmd.PersistentFlags().BoolVar(&flagWrap, "wrap", true, "Wrap edges (torus)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(viewCmd)
}

// loadConfig reads the configuration file and applies flags the user set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Rule = flagRule
	}
	if flags.Changed("size") {
		cfg.Size = flagSize
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if flags.Changed("wrap") {
		cfg.Wrap = flagWrap
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
