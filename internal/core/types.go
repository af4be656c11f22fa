package core

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	// ErrInvalidConfig marks configuration rejected before any step runs.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnknownRule is returned when no rule is registered under a name.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrRuleContract marks a rule returning a state it does not own.
	ErrRuleContract = errors.New("rule contract violation")
)

// Kind tags which rule a State belongs to.
type Kind uint8

const (
	// KindNone is the state of a cell no rule has initialized yet.
	KindNone Kind = iota
	KindLife
	KindCyclic
	KindWave
	KindBrain
	KindElementary
)

var kindNames = map[Kind]string{
	KindNone:       "none",
	KindLife:       "life",
	KindCyclic:     "cyclic",
	KindWave:       "wave",
	KindBrain:      "briansbrain",
	KindElementary: "elementary",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// State is the per-cell automaton state. Each rule reads only the fields it
// owns: Alive for two-state rules, Level for multi-state rules.
type State struct {
	Kind  Kind
	Alive bool
	Level int
}

// NeighborState is a neighbor's state tagged with its direction.
type NeighborState struct {
	Dir   Direction
	State State
}

// Input bundles everything a rule may look at for a single cell.
type Input struct {
	X, Y int
	Size int

	Cell      State
	Neighbors []NeighborState

	Step    uint64
	Elapsed time.Duration

	// Rand is reseeded for every cell; rules may only draw from it at the
	// points where their behaviour is defined as random.
	Rand *RNG
}

// Neighbor returns the state found in direction d, if that neighbor exists.
func (in *Input) Neighbor(d Direction) (State, bool) {
	for _, n := range in.Neighbors {
		if n.Dir == d {
			return n.State, true
		}
	}
	return State{}, false
}

// Rule maps a cell's previous state and neighborhood to its next state and
// color. Apply must treat Step == 0 as the only initialization point.
type Rule interface {
	Name() string
	Kind() Kind
	Default() State
	Apply(in *Input) (State, Color)
}

// Validator is implemented by rules that can check their own state shape.
type Validator interface {
	Validate(s State) error
}

// Checker is implemented by rules whose own settings can be invalid. The
// engine calls Check once at construction, before any grid is allocated.
type Checker interface {
	Check() error
}

// Painter is implemented by rules whose color is a function of state alone.
type Painter interface {
	Paint(s State) Color
}

// Factory constructs a Rule from flag-style key/value parameters.
type Factory func(params map[string]string) (Rule, error)

var (
	rules   = map[string]Factory{}
	rulesMu sync.RWMutex
)

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rulesMu.Lock()
	defer rulesMu.Unlock()
	if _, exists := rules[name]; exists {
		panic(fmt.Sprintf("core: rule %q already registered", name))
	}
	rules[name] = f
}

// RuleNames lists registered rule names in sorted order.
func RuleNames() []string {
	rulesMu.RLock()
	defer rulesMu.RUnlock()
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRule instantiates the rule registered under name.
func NewRule(name string, params map[string]string) (Rule, error) {
	rulesMu.RLock()
	f, ok := rules[name]
	rulesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	r, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", name, err)
	}
	return r, nil
}
