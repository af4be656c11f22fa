package engine

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cellsim/internal/core"
)

// minRowsPerWorker keeps tiny grids from being split into slivers.
const minRowsPerWorker = 3

// pass describes one generation: every cell of write is computed from read.
type pass struct {
	read, write *core.Grid
	rule        core.Rule
	validator   core.Validator
	step        uint64
	elapsed     time.Duration
	seed        int64
}

// band is a half-open row range [y1, y2) handled by a single worker.
type band struct {
	y1, y2 int
}

// bands partitions n rows across at most workers ranges.
func bands(n, workers int) []band {
	if workers < 1 {
		workers = 1
	}
	rows := n / workers
	if rows < minRowsPerWorker {
		rows = minRowsPerWorker
	} else if rows*workers < n {
		rows++
	}
	out := make([]band, 0, workers)
	for y1 := 0; y1 < n; y1 += rows {
		y2 := y1 + rows
		if y2 > n {
			y2 = n
		}
		out = append(out, band{y1: y1, y2: y2})
	}
	return out
}

// run computes the whole pass. Reads only touch p.read and each cell writes
// only its own slot in p.write, so bands need no synchronisation beyond the
// final Wait. The first contract violation is returned; the caller must then
// discard p.write.
func (p *pass) run(workers int) error {
	n := p.read.Size()
	parts := bands(n, workers)
	if len(parts) == 1 {
		return p.rows(parts[0])
	}
	var g errgroup.Group
	for _, b := range parts {
		g.Go(func() error { return p.rows(b) })
	}
	return g.Wait()
}

func (p *pass) rows(b band) error {
	n := p.read.Size()
	kind := p.rule.Kind()
	rng := core.NewRNG(p.seed)
	in := core.Input{
		Size:      n,
		Step:      p.step,
		Elapsed:   p.elapsed,
		Rand:      rng,
		Neighbors: make([]core.NeighborState, 0, len(core.Directions)),
	}
	for y := b.y1; y < b.y2; y++ {
		for x := 0; x < n; x++ {
			idx := p.read.Index(x, y)
			in.X, in.Y = x, y
			in.Cell = p.read.State(x, y)
			in.Neighbors = p.read.NeighborStates(x, y, in.Neighbors)
			rng.Reseed(p.seed, core.CellStream(p.step, idx))

			s, c := p.rule.Apply(&in)
			if s.Kind != kind {
				return fmt.Errorf("%w: %s returned %v state at (%d,%d)", core.ErrRuleContract, p.rule.Name(), s.Kind, x, y)
			}
			if p.validator != nil {
				if err := p.validator.Validate(s); err != nil {
					return fmt.Errorf("%w: %s at (%d,%d): %v", core.ErrRuleContract, p.rule.Name(), x, y, err)
				}
			}
			p.write.SetCell(x, y, s, c)
		}
	}
	return nil
}
