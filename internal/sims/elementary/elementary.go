package elementary

import (
	"fmt"

	"cellsim/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	code, ok := core.ParamInt(cfg, "rule", int(c.Rule))
	if !ok || code < 0 || code > 255 {
		return c, fmt.Errorf("%w: elementary rule %q must be in [0, 255]", core.ErrInvalidConfig, cfg["rule"])
	}
	c.Rule = uint8(code)
	return c, nil
}

// Elementary implements a one-dimensional Wolfram code projected vertically:
// the top row evolves and every other row copies the row above it, so
// history scrolls downwards.
type Elementary struct {
	rule uint8
}

// New creates an automaton for the given Wolfram code.
func New(rule uint8) *Elementary {
	return &Elementary{rule: rule}
}

// Name returns the rule identifier.
func (e *Elementary) Name() string { return "elementary" }

// Kind returns the state tag owned by this rule.
func (e *Elementary) Kind() core.Kind { return core.KindElementary }

// Default returns the uninitialized state.
func (e *Elementary) Default() core.State { return core.State{} }

// Apply seeds a single active cell at the top center on step 0 and then
// evolves the top row while shifting older rows down.
func (e *Elementary) Apply(in *core.Input) (core.State, core.Color) {
	if in.Step == 0 {
		return e.emit(in.Y == 0 && in.X == in.Size/2)
	}
	if in.Y > 0 {
		above, _ := in.Neighbor(core.Top)
		return e.emit(above.Alive)
	}

	left, _ := in.Neighbor(core.Left)
	right, _ := in.Neighbor(core.Right)
	idx := bit(left.Alive)<<2 | bit(in.Cell.Alive)<<1 | bit(right.Alive)
	return e.emit((e.rule>>idx)&1 == 1)
}

// Paint maps liveness to white or black.
func (e *Elementary) Paint(s core.State) core.Color {
	if s.Alive {
		return core.White
	}
	return core.Black
}

// Parameters reports the Wolfram code.
func (e *Elementary) Parameters() []core.Parameter {
	return []core.Parameter{core.IntParam("rule", "Wolfram code", int(e.rule))}
}

func (e *Elementary) emit(alive bool) (core.State, core.Color) {
	s := core.State{Kind: core.KindElementary, Alive: alive}
	return s, e.Paint(s)
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func init() {
	core.Register("elementary", func(params map[string]string) (core.Rule, error) {
		c, err := FromMap(params)
		if err != nil {
			return nil, err
		}
		return New(c.Rule), nil
	})
}
