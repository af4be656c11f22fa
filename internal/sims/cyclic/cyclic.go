package cyclic

import (
	"fmt"

	"cellsim/internal/core"
)

// Config holds parameters for the cyclic cellular automaton.
type Config struct {
	States    int
	Threshold int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{States: 16, Threshold: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var ok bool
	if c.States, ok = core.ParamInt(cfg, "states", c.States); !ok {
		return c, fmt.Errorf("%w: states %q is not an integer", core.ErrInvalidConfig, cfg["states"])
	}
	if c.Threshold, ok = core.ParamInt(cfg, "threshold", c.Threshold); !ok {
		return c, fmt.Errorf("%w: threshold %q is not an integer", core.ErrInvalidConfig, cfg["threshold"])
	}
	return c, c.Validate()
}

// Validate rejects state counts and thresholds the rule cannot run with.
func (c Config) Validate() error {
	if c.States <= 1 {
		return fmt.Errorf("%w: cyclic states must be > 1, got %d", core.ErrInvalidConfig, c.States)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: cyclic threshold must be >= 0, got %d", core.ErrInvalidConfig, c.Threshold)
	}
	return nil
}

// Cyclic advances a cell to the next state once enough neighbors already
// hold it. States run 0..States-1; reaching States-1 by increment wraps to 0.
type Cyclic struct {
	cfg Config
}

// New creates a cyclic rule. An invalid configuration is reported by Check.
func New(cfg Config) *Cyclic {
	return &Cyclic{cfg: cfg}
}

// Check reports whether the rule can run with its configuration.
func (c *Cyclic) Check() error { return c.cfg.Validate() }

// Name returns the rule identifier.
func (c *Cyclic) Name() string { return "cyclic" }

// Kind returns the state tag owned by this rule.
func (c *Cyclic) Kind() core.Kind { return core.KindCyclic }

// Default returns the uninitialized state.
func (c *Cyclic) Default() core.State { return core.State{} }

// Config returns the configuration the rule was built with.
func (c *Cyclic) Config() Config { return c.cfg }

// Apply computes the next state of a single cell.
func (c *Cyclic) Apply(in *core.Input) (core.State, core.Color) {
	k := c.cfg.States
	if in.Step == 0 {
		level := in.Rand.IntRange(0, k-1)
		return c.state(level), core.Lerp(core.Purple, core.Orange, float64(level)/float64(k))
	}

	level := in.Cell.Level
	target := level + 1
	count := 0
	for _, nb := range in.Neighbors {
		if nb.State.Level == target {
			count++
		}
	}
	if count >= c.cfg.Threshold {
		level = c.Next(level)
	}
	return c.state(level), c.Paint(c.state(level))
}

// Next returns the state a cell at level moves to when it advances.
func (c *Cyclic) Next(level int) int {
	if level+1 == c.cfg.States-1 {
		return 0
	}
	return level + 1
}

// Paint shades a state between blue and black.
func (c *Cyclic) Paint(s core.State) core.Color {
	return core.Lerp(core.Blue, core.Black, float64(s.Level)/float64(c.cfg.States))
}

// Validate rejects levels outside [0, States).
func (c *Cyclic) Validate(s core.State) error {
	if s.Level < 0 || s.Level >= c.cfg.States {
		return fmt.Errorf("cyclic level %d outside [0, %d)", s.Level, c.cfg.States)
	}
	return nil
}

// Parameters reports the configured state count and threshold.
func (c *Cyclic) Parameters() []core.Parameter {
	return []core.Parameter{
		core.IntParam("states", "States", c.cfg.States),
		core.IntParam("threshold", "Threshold", c.cfg.Threshold),
	}
}

// Level builds a cyclic state, handy when loading patterns.
func Level(level int) core.State {
	return core.State{Kind: core.KindCyclic, Level: level}
}

func (c *Cyclic) state(level int) core.State { return Level(level) }

func init() {
	core.Register("cyclic", func(params map[string]string) (core.Rule, error) {
		c, err := FromMap(params)
		if err != nil {
			return nil, err
		}
		return New(c), nil
	})
}
