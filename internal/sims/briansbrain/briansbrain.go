package briansbrain

import (
	"fmt"

	"cellsim/internal/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var (
	colorOn    = core.White
	colorDying = core.Blue
	colorDead  = core.Black
)

// Brain implements Brian's Brain cellular automaton.
type Brain struct{}

// New creates a Brain rule.
func New() *Brain { return &Brain{} }

// Name identifies the rule.
func (b *Brain) Name() string { return "briansbrain" }

// Kind returns the state tag owned by this rule.
func (b *Brain) Kind() core.Kind { return core.KindBrain }

// Default returns the uninitialized state.
func (b *Brain) Default() core.State { return core.State{} }

// Apply advances a single cell by one tick. Step 0 fires roughly one cell
// in eight.
func (b *Brain) Apply(in *core.Input) (core.State, core.Color) {
	if in.Step == 0 {
		if in.Rand.IntN(8) == 0 {
			return b.emit(stateOn)
		}
		return b.emit(stateDead)
	}

	switch in.Cell.Level {
	case stateOn:
		return b.emit(stateDying)
	case stateDying:
		return b.emit(stateDead)
	default:
		neighbors := 0
		for _, nb := range in.Neighbors {
			if nb.State.Level == stateOn {
				neighbors++
			}
		}
		if neighbors == 2 {
			return b.emit(stateOn)
		}
		return b.emit(stateDead)
	}
}

// Paint maps firing, dying and dead cells to white, blue and black.
func (b *Brain) Paint(s core.State) core.Color {
	switch s.Level {
	case stateOn:
		return colorOn
	case stateDying:
		return colorDying
	default:
		return colorDead
	}
}

// Validate rejects levels other than dead, on and dying.
func (b *Brain) Validate(s core.State) error {
	if s.Level < stateDead || s.Level > stateDying {
		return fmt.Errorf("briansbrain level %d is not a valid state", s.Level)
	}
	return nil
}

func (b *Brain) emit(level int) (core.State, core.Color) {
	s := core.State{Kind: core.KindBrain, Level: level, Alive: level == stateOn}
	return s, b.Paint(s)
}

func init() {
	core.Register("briansbrain", func(map[string]string) (core.Rule, error) {
		return New(), nil
	})
}
