// Package wave implements a stateless procedural pattern: a sinusoidal band
// sweeping across the grid over time. It ignores neighbors entirely.
package wave

import (
	"math"
	"time"

	"cellsim/internal/core"
)

const (
	timeScale = 1500.0
	period    = math.Pi * 2.02
	bandStart = 0.2
)

// Wave colors cells above, inside and below a moving band.
type Wave struct{}

// New returns the wave rule.
func New() *Wave { return &Wave{} }

// Name returns the rule identifier.
func (w *Wave) Name() string { return "wave" }

// Kind returns the state tag owned by this rule.
func (w *Wave) Kind() core.Kind { return core.KindWave }

// Default returns the uninitialized state.
func (w *Wave) Default() core.State { return core.State{} }

// Apply colors the cell from its position and the elapsed time.
func (w *Wave) Apply(in *core.Input) (core.State, core.Color) {
	s := core.State{Kind: core.KindWave}
	size := float64(in.Size)
	top := Top(in.X, in.Size, in.Elapsed)
	depth := float64(in.Y) / size

	switch {
	case in.Y == top || in.Y == top-1:
		if in.Rand.Float64()*0.5 > depth {
			return s, core.White
		}
		return s, core.Blue
	case in.Y > top:
		return s, core.Lerp(core.Purple, core.Red, depth)
	default:
		return s, core.Lerp(core.Blue, core.Black, depth-0.25)
	}
}

// Top returns the row at which the band crest sits in column x.
func Top(x, size int, elapsed time.Duration) int {
	t := float64(elapsed.Milliseconds()) / timeScale
	amplitude := float64(size)
	y := math.Sin((float64(x)+t)*period) * amplitude
	start := amplitude * bandStart
	end := amplitude * (0.5 + math.Sin(t)/4)
	return int(math.Ceil(core.MapTo(y, -amplitude, amplitude, start, end)))
}

func init() {
	core.Register("wave", func(map[string]string) (core.Rule, error) {
		return New(), nil
	})
}
