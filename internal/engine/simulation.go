// Package engine drives a rule over a pair of double-buffered grids and
// exports each completed generation as RGBA pixels.
package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"cellsim/internal/core"
	"cellsim/internal/render"
)

// Config fixes the shape and behaviour of a simulation. It is not
// hot-reloadable; build a new Simulation to change it.
type Config struct {
	Size    int
	Rule    string
	Params  map[string]string
	Wrap    bool
	Seed    int64
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 320, Rule: "life", Wrap: true, Seed: 42, Workers: 1}
}

// Validate reports configuration errors that would prevent a step from
// ever running.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", core.ErrInvalidConfig, c.Size)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", core.ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Option customises a Simulation.
type Option func(*Simulation)

// WithRule uses r instead of looking Config.Rule up in the registry.
func WithRule(r core.Rule) Option {
	return func(s *Simulation) { s.rule = r }
}

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Simulation owns the read and write grids and the step counter. It is not
// safe for concurrent use.
type Simulation struct {
	cfg    Config
	rule   core.Rule
	logger *log.Logger

	topo  *core.Topology
	read  *core.Grid
	write *core.Grid

	step        uint64
	initialized bool
	stepped     bool // write still holds the generation before read
	frame       []byte
}

// New validates cfg, resolves the rule and allocates both grids.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rule == nil {
		r, err := core.NewRule(cfg.Rule, cfg.Params)
		if err != nil {
			return nil, err
		}
		s.rule = r
	}
	if c, ok := s.rule.(core.Checker); ok {
		if err := c.Check(); err != nil {
			return nil, fmt.Errorf("rule %s: %w", s.rule.Name(), err)
		}
	}
	if s.cfg.Rule == "" {
		s.cfg.Rule = s.rule.Name()
	}
	s.topo = core.NewTopology(cfg.Size, cfg.Wrap)
	s.Reset()
	return s, nil
}

// Reset reallocates both grids with the rule's default state and rewinds
// the step counter to zero.
func (s *Simulation) Reset() {
	def := s.rule.Default()
	s.read = core.NewGrid(s.topo, def)
	s.write = core.NewGrid(s.topo, def)
	s.step = 0
	s.initialized = false
	s.stepped = false
	s.logger.Debug("grids allocated", "rule", s.rule.Name(), "size", s.cfg.Size, "wrap", s.cfg.Wrap, "seed", s.cfg.Seed)
}

// ResetWithSeed changes the seed used for randomized initialization and
// resets.
func (s *Simulation) ResetWithSeed(seed int64) {
	s.cfg.Seed = seed
	s.Reset()
}

// Step advances one generation and returns the exported frame. The returned
// slice is owned by the simulation and valid until the next Step or Reset.
// On error nothing is swapped and the step counter does not move.
func (s *Simulation) Step(elapsed time.Duration) ([]byte, error) {
	p := pass{
		read:    s.read,
		write:   s.write,
		rule:    s.rule,
		step:    s.step,
		elapsed: elapsed,
		seed:    s.cfg.Seed,
	}
	if v, ok := s.rule.(core.Validator); ok {
		p.validator = v
	}
	if err := p.run(s.cfg.Workers); err != nil {
		// write is partly overwritten, so there is no previous generation
		// left to diff against.
		s.stepped = false
		s.logger.Error("step aborted", "step", s.step, "err", err)
		return nil, fmt.Errorf("step %d: %w", s.step, err)
	}

	s.read, s.write = s.write, s.read
	s.step++
	s.initialized = true
	s.stepped = true
	return s.Frame(), nil
}

// Load replaces random initialization with a known pattern: every cell of
// the current grid is set from pattern and the counter moves to 1 so the
// next Step applies the rule proper.
func (s *Simulation) Load(pattern func(x, y int) core.State) error {
	n := s.cfg.Size
	kind := s.rule.Kind()
	painter, _ := s.rule.(core.Painter)
	validator, _ := s.rule.(core.Validator)
	next := core.NewGrid(s.topo, s.rule.Default())
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			st := pattern(x, y)
			if st.Kind != kind {
				return fmt.Errorf("%w: pattern gave %v state at (%d,%d) for %s", core.ErrRuleContract, st.Kind, x, y, s.rule.Name())
			}
			if validator != nil {
				if err := validator.Validate(st); err != nil {
					return fmt.Errorf("%w: pattern at (%d,%d): %v", core.ErrRuleContract, x, y, err)
				}
			}
			col := core.Black
			if painter != nil {
				col = painter.Paint(st)
			}
			next.SetCell(x, y, st, col)
		}
	}
	s.read = next
	s.step = 1
	s.initialized = true
	s.stepped = false
	return nil
}

// IsInitialized reports whether the grids hold rule-initialized state,
// either from step 0 or from Load.
func (s *Simulation) IsInitialized() bool { return s.initialized }

// StepIndex returns the number of completed steps.
func (s *Simulation) StepIndex() uint64 { return s.step }

// Size returns the grid side length.
func (s *Simulation) Size() int { return s.cfg.Size }

// Config returns the configuration in effect.
func (s *Simulation) Config() Config { return s.cfg }

// Rule returns the active rule.
func (s *Simulation) Rule() core.Rule { return s.rule }

// Current returns the grid holding the latest generation. Callers must not
// modify it.
func (s *Simulation) Current() *core.Grid { return s.read }

// Frame exports the latest generation into the simulation's frame buffer.
func (s *Simulation) Frame() []byte {
	s.frame = render.Export(s.read, s.frame)
	return s.frame
}
