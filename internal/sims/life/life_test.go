package life

import (
	"testing"

	"cellsim/internal/core"
)

func input(alive bool, liveNeighbors int) *core.Input {
	in := &core.Input{Step: 1, Size: 5, Cell: Alive(alive)}
	for i, d := range core.Directions {
		in.Neighbors = append(in.Neighbors, core.NeighborState{Dir: d, State: Alive(i < liveNeighbors)})
	}
	return in
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      bool
	}{
		{"dead with three is born", false, 3, true},
		{"dead with two stays dead", false, 2, false},
		{"live with one dies", true, 1, false},
		{"live with two survives", true, 2, true},
		{"live with three survives", true, 3, true},
		{"live with four dies", true, 4, false},
		{"dead with eight stays dead", false, 8, false},
	}

	l := New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, c := l.Apply(input(tc.alive, tc.neighbors))
			if s.Kind != core.KindLife {
				t.Fatalf("kind = %v, want life", s.Kind)
			}
			if s.Alive != tc.want {
				t.Fatalf("alive = %v, want %v", s.Alive, tc.want)
			}
			wantColor := core.Black
			if tc.want {
				wantColor = core.White
			}
			if c != wantColor {
				t.Fatalf("color = %+v, want %+v", c, wantColor)
			}
		})
	}
}

func TestInitializationIsSeeded(t *testing.T) {
	l := New()
	rng := core.NewRNG(42)
	draw := func() []bool {
		out := make([]bool, 64)
		for i := range out {
			rng.Reseed(42, core.CellStream(0, i))
			s, _ := l.Apply(&core.Input{Step: 0, Rand: rng})
			out[i] = s.Alive
		}
		return out
	}
	a, b := draw(), draw()
	live := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
		if a[i] {
			live++
		}
	}
	if live == 0 || live == len(a) {
		t.Fatalf("expected a mix of live and dead cells, got %d live", live)
	}
}
