package main

import (
	"errors"
	"testing"

	"cellsim/internal/config"
	"cellsim/internal/core"
)

func smallBase() config.Config {
	cfg := config.Default()
	cfg.Size = 12
	cfg.Seed = 7
	return cfg
}

func TestSweepOrdersResultsAndKeepsFailures(t *testing.T) {
	sets := []paramSet{
		{states: 4, threshold: 1},
		{states: 1, threshold: 1}, // invalid: needs at least two states
		{states: 8, threshold: 2},
	}
	all := sweep(smallBase(), sets, 20, 2)
	if len(all) != len(sets) {
		t.Fatalf("got %d results, want %d", len(all), len(sets))
	}

	last := all[len(all)-1]
	if last.err == nil || !errors.Is(last.err, core.ErrInvalidConfig) {
		t.Fatalf("expected invalid set last with ErrInvalidConfig, got %+v", last)
	}
	for i := 0; i < len(all)-1; i++ {
		res := all[i]
		if res.err != nil {
			t.Fatalf("result %d unexpectedly failed: %v", i, res.err)
		}
		if res.activity < 0 || res.activity > 1 {
			t.Fatalf("activity out of range: %v", res.activity)
		}
		if res.share <= 0 || res.share > 1 {
			t.Fatalf("share out of range: %v", res.share)
		}
		if i > 0 && all[i-1].activity < res.activity {
			t.Fatalf("results not sorted by activity: %v before %v", all[i-1].activity, res.activity)
		}
	}
}

func TestSweepIndependentOfPoolSize(t *testing.T) {
	sets := []paramSet{
		{states: 4, threshold: 1},
		{states: 6, threshold: 1},
		{states: 8, threshold: 3},
		{states: 12, threshold: 2},
	}
	one := sweep(smallBase(), sets, 15, 1)
	many := sweep(smallBase(), sets, 15, 4)
	for i := range one {
		if one[i].params != many[i].params || one[i].activity != many[i].activity || one[i].share != many[i].share {
			t.Fatalf("result %d differs: %+v vs %+v", i, one[i], many[i])
		}
	}
}
