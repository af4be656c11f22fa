package elementary

import (
	"errors"
	"testing"

	"cellsim/internal/core"
)

func cell(alive bool) core.State { return core.State{Kind: core.KindElementary, Alive: alive} }

func TestTopRowAppliesCode(t *testing.T) {
	e := New(110)
	// Rule 110: 111->0 110->1 101->1 100->0 011->1 010->1 001->1 000->0
	want := map[[3]bool]bool{
		{true, true, true}:    false,
		{true, true, false}:   true,
		{true, false, true}:   true,
		{true, false, false}:  false,
		{false, true, true}:   true,
		{false, true, false}:  true,
		{false, false, true}:  true,
		{false, false, false}: false,
	}
	for pattern, expect := range want {
		in := &core.Input{X: 2, Y: 0, Size: 5, Step: 1, Cell: cell(pattern[1]), Neighbors: []core.NeighborState{
			{Dir: core.Left, State: cell(pattern[0])},
			{Dir: core.Right, State: cell(pattern[2])},
		}}
		if s, _ := e.Apply(in); s.Alive != expect {
			t.Errorf("pattern %v: alive = %v, want %v", pattern, s.Alive, expect)
		}
	}
}

func TestLowerRowsScroll(t *testing.T) {
	e := New(30)
	in := &core.Input{X: 1, Y: 3, Size: 5, Step: 7, Cell: cell(false), Neighbors: []core.NeighborState{
		{Dir: core.Top, State: cell(true)},
	}}
	if s, _ := e.Apply(in); !s.Alive {
		t.Fatal("expected the row to copy the live cell above it")
	}
}

func TestSeedRow(t *testing.T) {
	e := New(110)
	for x := 0; x < 9; x++ {
		s, _ := e.Apply(&core.Input{X: x, Y: 0, Size: 9})
		if s.Alive != (x == 4) {
			t.Fatalf("x=%d alive=%v", x, s.Alive)
		}
	}
}

func TestFromMapRejectsOutOfRange(t *testing.T) {
	if _, err := FromMap(map[string]string{"rule": "300"}); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	c, err := FromMap(map[string]string{"rule": "90"})
	if err != nil || c.Rule != 90 {
		t.Fatalf("got %+v, %v", c, err)
	}
}
