package core

import "time"

// FixedStep maps simulation ticks onto elapsed simulated time at a steady
// ticks-per-second rate, so time-driven rules replay identically regardless
// of how fast the host actually runs.
type FixedStep struct {
	step    time.Duration
	elapsed time.Duration
	ticks   uint64
}

// NewFixedStep constructs a FixedStep targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Time already accumulated is kept.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Tick returns the elapsed time for the tick about to run and advances the
// clock by one interval. The first tick observes zero elapsed time.
func (f *FixedStep) Tick() time.Duration {
	now := f.elapsed
	f.elapsed += f.step
	f.ticks++
	return now
}

// Elapsed returns the simulated time accumulated so far.
func (f *FixedStep) Elapsed() time.Duration { return f.elapsed }

// Ticks returns how many ticks have been handed out.
func (f *FixedStep) Ticks() uint64 { return f.ticks }

// Reset rewinds the clock to zero.
func (f *FixedStep) Reset() {
	f.elapsed = 0
	f.ticks = 0
}
