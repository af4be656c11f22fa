package cyclic

import (
	"errors"
	"testing"

	"cellsim/internal/core"
)

func input(level int, neighborLevels ...int) *core.Input {
	in := &core.Input{Step: 1, Size: 8, Cell: Level(level)}
	for i, nl := range neighborLevels {
		in.Neighbors = append(in.Neighbors, core.NeighborState{Dir: core.Directions[i], State: Level(nl)})
	}
	return in
}

func TestAdvance(t *testing.T) {
	c := New(Config{States: 16, Threshold: 1})
	tests := []struct {
		name      string
		level     int
		neighbors []int
		want      int
	}{
		{"advances with one successor", 3, []int{4, 0, 0}, 4},
		{"stays without successor", 3, []int{3, 5, 2}, 3},
		{"wraps when successor is K-1", 14, []int{15}, 0},
		{"top state has no successor", 15, []int{0, 0, 15}, 15},
		{"successor is not wrapped", 15, []int{0}, 15},
		{"zero advances", 0, []int{1}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, col := c.Apply(input(tc.level, tc.neighbors...))
			if s.Kind != core.KindCyclic {
				t.Fatalf("kind = %v, want cyclic", s.Kind)
			}
			if s.Level != tc.want {
				t.Fatalf("level = %d, want %d", s.Level, tc.want)
			}
			if col != c.Paint(s) {
				t.Fatalf("color %+v does not match Paint", col)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	c := New(Config{States: 8, Threshold: 3})
	if s, _ := c.Apply(input(2, 3, 3, 1)); s.Level != 2 {
		t.Fatalf("two successors under threshold 3 advanced to %d", s.Level)
	}
	if s, _ := c.Apply(input(2, 3, 3, 3)); s.Level != 3 {
		t.Fatalf("three successors under threshold 3 stayed at %d", s.Level)
	}
}

func TestInitializationRange(t *testing.T) {
	c := New(DefaultConfig())
	rng := core.NewRNG(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		rng.Reseed(1, core.CellStream(0, i))
		s, _ := c.Apply(&core.Input{Step: 0, Rand: rng})
		if err := c.Validate(s); err != nil {
			t.Fatal(err)
		}
		seen[s.Level] = true
	}
	if !seen[0] || !seen[15] {
		t.Fatalf("expected both ends of [0, 15] to be drawn, saw %v", seen)
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{"states": "12", "threshold": "2"})
	if err != nil {
		t.Fatal(err)
	}
	if c.States != 12 || c.Threshold != 2 {
		t.Fatalf("got %+v", c)
	}

	for _, bad := range []map[string]string{
		{"states": "1"},
		{"states": "0"},
		{"states": "many"},
		{"threshold": "-1"},
	} {
		if _, err := FromMap(bad); !errors.Is(err, core.ErrInvalidConfig) {
			t.Errorf("FromMap(%v) error = %v, want ErrInvalidConfig", bad, err)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		cfg Config
		ok  bool
	}{
		{DefaultConfig(), true},
		{Config{States: 2, Threshold: 0}, true},
		{Config{States: 1, Threshold: 1}, false},
		{Config{States: 0, Threshold: 1}, false},
		{Config{States: 4, Threshold: -2}, false},
	}
	for _, tc := range tests {
		err := New(tc.cfg).Check()
		if tc.ok && err != nil {
			t.Errorf("Check(%+v) = %v, want nil", tc.cfg, err)
		}
		if !tc.ok && !errors.Is(err, core.ErrInvalidConfig) {
			t.Errorf("Check(%+v) = %v, want ErrInvalidConfig", tc.cfg, err)
		}
	}
}
