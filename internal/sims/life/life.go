package life

import (
	"cellsim/internal/core"
)

// Life implements Conway's Game of Life: survive on 2 or 3 live
// neighbors, birth on exactly 3.
type Life struct{}

// New returns the Life rule.
func New() *Life { return &Life{} }

// Name returns the rule identifier.
func (l *Life) Name() string { return "life" }

// Kind returns the state tag owned by this rule.
func (l *Life) Kind() core.Kind { return core.KindLife }

// Default returns the uninitialized state.
func (l *Life) Default() core.State { return core.State{} }

// Apply computes the next generation of a single cell.
func (l *Life) Apply(in *core.Input) (core.State, core.Color) {
	if in.Step == 0 {
		alive := in.Rand.Float64() < 0.5
		return l.state(alive), l.paint(alive)
	}

	neighbors := 0
	for _, nb := range in.Neighbors {
		if nb.State.Alive {
			neighbors++
		}
	}
	alive := in.Cell.Alive
	next := (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
	return l.state(next), l.paint(next)
}

// Paint maps liveness to white or black.
func (l *Life) Paint(s core.State) core.Color { return l.paint(s.Alive) }

// Alive builds a live or dead Life state, handy when loading patterns.
func Alive(alive bool) core.State {
	return core.State{Kind: core.KindLife, Alive: alive}
}

func (l *Life) state(alive bool) core.State { return Alive(alive) }

func (l *Life) paint(alive bool) core.Color {
	if alive {
		return core.White
	}
	return core.Black
}

func init() {
	core.Register("life", func(map[string]string) (core.Rule, error) {
		return New(), nil
	})
}
