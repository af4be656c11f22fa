package wave

import (
	"testing"
	"time"

	"cellsim/internal/core"
)

func TestRegionsAroundBand(t *testing.T) {
	const size = 64
	w := New()
	rng := core.NewRNG(3)
	elapsed := 2 * time.Second

	for x := 0; x < size; x++ {
		top := Top(x, size, elapsed)
		if top < 0 || top > size {
			t.Fatalf("column %d: band top %d outside the grid", x, top)
		}
		for y := 0; y < size; y++ {
			in := &core.Input{X: x, Y: y, Size: size, Step: 5, Elapsed: elapsed, Rand: rng}
			s, c := w.Apply(in)
			if s.Kind != core.KindWave {
				t.Fatalf("kind = %v, want wave", s.Kind)
			}
			depth := float64(y) / size
			switch {
			case y == top || y == top-1:
				if c != core.White && c != core.Blue {
					t.Fatalf("(%d,%d) band color %+v", x, y, c)
				}
			case y > top:
				if want := core.Lerp(core.Purple, core.Red, depth); c != want {
					t.Fatalf("(%d,%d) below band = %+v, want %+v", x, y, c, want)
				}
			default:
				if want := core.Lerp(core.Blue, core.Black, depth-0.25); c != want {
					t.Fatalf("(%d,%d) above band = %+v, want %+v", x, y, c, want)
				}
			}
		}
	}
}

func TestBandMovesWithTime(t *testing.T) {
	moved := false
	for x := 0; x < 32; x++ {
		if Top(x, 32, 0) != Top(x, 32, 900*time.Millisecond) {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("expected the band to move between t=0 and t=900ms")
	}
}

func TestIgnoresNeighborsAndState(t *testing.T) {
	w := New()
	rng := core.NewRNG(1)
	base := &core.Input{X: 3, Y: 40, Size: 48, Step: 2, Elapsed: time.Second, Rand: rng}
	_, a := w.Apply(base)

	other := *base
	other.Cell = core.State{Kind: core.KindWave, Alive: true, Level: 9}
	other.Neighbors = []core.NeighborState{{Dir: core.Top, State: core.State{Alive: true}}}
	if y := Top(3, 48, time.Second); y == 40 || y == 41 {
		t.Skip("sample cell sits on the randomized band")
	}
	if _, b := w.Apply(&other); a != b {
		t.Fatalf("color changed with neighbors: %+v vs %+v", a, b)
	}
}
