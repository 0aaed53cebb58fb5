package life

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"tilelife/internal/topology"
)

// Rule holds the thresholds of a generalized Conway rule.
type Rule struct {
	Underpopulation int `toml:"underpopulation"`
	Overpopulation  int `toml:"overpopulation"`
	Reproduction    int `toml:"reproduction"`
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{Underpopulation: 2, Overpopulation: 3, Reproduction: 3}

func (r Rule) String() string {
	return fmt.Sprintf("u=%d o=%d r=%d", r.Underpopulation, r.Overpopulation, r.Reproduction)
}

// Validate rejects thresholds no neighborhood can reach.
func (r Rule) Validate() error {
	for _, v := range []struct {
		name  string
		value int
	}{
		{"underpopulation", r.Underpopulation},
		{"overpopulation", r.Overpopulation},
		{"reproduction", r.Reproduction},
	} {
		if v.value < 0 || v.value > topology.MaxNeighbors {
			return fmt.Errorf("life: %s threshold %d outside [0,%d]", v.name, v.value, topology.MaxNeighbors)
		}
	}
	return nil
}

// Next returns the state a cell moves to given its current state and
// number of live neighbors.
func (r Rule) Next(state float32, n int) float32 {
	next := state
	if n < r.Underpopulation || n > r.Overpopulation {
		next = 0
	}
	if n == r.Reproduction {
		next = 1
	}
	return next
}

// Rules keeps one rule per tiling. Hexagons and triangles reuse Conway's
// thresholds unless configured otherwise.
type Rules struct {
	Square   Rule `toml:"square"`
	Triangle Rule `toml:"triangle"`
	Hexagon  Rule `toml:"hexagon"`
}

// DefaultRules applies Conway to every tiling.
func DefaultRules() Rules {
	return Rules{Square: Conway, Triangle: Conway, Hexagon: Conway}
}

// For returns the rule used for mode m.
func (rs Rules) For(m topology.Mode) Rule {
	switch m {
	case topology.Triangle:
		return rs.Triangle
	case topology.Hexagon:
		return rs.Hexagon
	default:
		return rs.Square
	}
}

// Set replaces the rule for mode m after validating it.
func (rs *Rules) Set(m topology.Mode, r Rule) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%s: %w", m, err)
	}
	switch m {
	case topology.Triangle:
		rs.Triangle = r
	case topology.Hexagon:
		rs.Hexagon = r
	default:
		rs.Square = r
	}
	return nil
}

// Validate checks every rule.
func (rs Rules) Validate() error {
	for _, m := range topology.Modes {
		if err := rs.For(m).Validate(); err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
	}
	return nil
}

// LoadRules reads rules from TOML. Tilings missing from the document keep
// the defaults.
//
//	[hexagon]
//	underpopulation = 2
//	overpopulation = 2
//	reproduction = 2
func LoadRules(r io.Reader) (Rules, error) {
	rules := DefaultRules()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rules); err != nil {
		return DefaultRules(), fmt.Errorf("life: decode rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return DefaultRules(), err
	}
	return rules, nil
}

// RuleFromMap overrides base with flag-style "u", "o" and "r" values.
// Unparseable or negative values are ignored.
func RuleFromMap(base Rule, cfg map[string]string) Rule {
	r := base
	if cfg == nil {
		return r
	}
	if v, ok := cfg["u"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.Underpopulation = parsed
		}
	}
	if v, ok := cfg["o"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.Overpopulation = parsed
		}
	}
	if v, ok := cfg["r"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			r.Reproduction = parsed
		}
	}
	return r
}
