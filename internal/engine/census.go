package engine

import "cellsim/internal/core"

// Census summarises the latest generation.
type Census struct {
	Step  uint64
	Cells int
	// Alive counts cells whose state reports Alive.
	Alive int
	// Levels is a histogram of State.Level values.
	Levels map[int]int
	// Changed counts cells whose state differs from the previous
	// generation. It is zero right after Reset or Load.
	Changed int
}

// Census counts the current generation and compares it with the previous
// one when that is still held in the write buffer.
func (s *Simulation) Census() Census {
	cur := s.read.Cells()
	c := Census{Step: s.step, Cells: len(cur), Levels: map[int]int{}}
	var prev []core.Cell
	if s.stepped {
		prev = s.write.Cells()
	}
	for i, cell := range cur {
		if cell.State.Alive {
			c.Alive++
		}
		c.Levels[cell.State.Level]++
		if prev != nil && prev[i].State != cell.State {
			c.Changed++
		}
	}
	return c
}

// Dominant returns the most common level and its share of all cells.
func (c Census) Dominant() (level int, share float64) {
	best := -1
	for l, n := range c.Levels {
		if n > best || (n == best && l < level) {
			level, best = l, n
		}
	}
	if c.Cells == 0 || best < 0 {
		return 0, 0
	}
	return level, float64(best) / float64(c.Cells)
}

// ChangedMask marks with 1 every cell whose state differs from the previous
// generation, reusing dst when it has the right length. The mask is all zero
// right after Reset or Load.
func (s *Simulation) ChangedMask(dst []uint8) []uint8 {
	cur := s.read.Cells()
	if len(dst) != len(cur) {
		dst = make([]uint8, len(cur))
	}
	if !s.stepped {
		clear(dst)
		return dst
	}
	prev := s.write.Cells()
	for i := range cur {
		dst[i] = 0
		if prev[i].State != cur[i].State {
			dst[i] = 1
		}
	}
	return dst
}
