package main

import (
	"fmt"
	"sort"
	"strings"

	"tilelife/internal/core"
	"tilelife/internal/grid"
	"tilelife/internal/life"
	"tilelife/internal/topology"
)

type scenario struct {
	mode topology.Mode
	rule life.Rule
}

func (s scenario) String() string {
	return fmt.Sprintf("%-8s %s", s.mode, s.rule)
}

type sweepConfig struct {
	size    grid.SizeClass
	width   int
	height  int
	steps   int
	seeds   []int64
	density float64
}

type scenarioResult struct {
	scenario   scenario
	population float64
	extinct    int
	stableAt   float64
	stableRuns int
	runs       int
	err        error
}

// score favors rules whose grids stay populated and keep changing.
func (r scenarioResult) score() float64 {
	if r.runs == 0 {
		return 0
	}
	alive := float64(r.runs-r.extinct) / float64(r.runs)
	moving := float64(r.runs-r.stableRuns) / float64(r.runs)
	return r.population * alive * (0.5 + 0.5*moving)
}

// neighborhood returns the largest neighbor count of an interior cell.
func neighborhood(mode topology.Mode) int {
	switch mode {
	case topology.Triangle:
		return 12
	case topology.Hexagon:
		return 6
	default:
		return 8
	}
}

// candidates enumerates the rules worth trying for mode: survival windows
// inside the neighborhood and any reproduction count, with pinned
// thresholds applied on top.
func candidates(mode topology.Mode, pins map[string]string) []scenario {
	n := neighborhood(mode)
	seen := map[life.Rule]bool{}
	var out []scenario
	for u := 1; u <= n/2; u++ {
		for o := u; o <= n; o++ {
			for r := 1; r <= n; r++ {
				rule := life.RuleFromMap(life.Rule{Underpopulation: u, Overpopulation: o, Reproduction: r}, pins)
				if rule.Validate() != nil || seen[rule] {
					continue
				}
				seen[rule] = true
				out = append(out, scenario{mode: mode, rule: rule})
			}
		}
	}
	return out
}

// parseOverrides turns "mode.key=value" strings into per-mode pins.
func parseOverrides(kvs []string) (map[topology.Mode]map[string]string, error) {
	pins := map[topology.Mode]map[string]string{}
	for _, kv := range kvs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("override %q: want mode.key=value", kv)
		}
		name, key, ok := strings.Cut(parts[0], ".")
		if !ok {
			return nil, fmt.Errorf("override %q: want mode.key=value", kv)
		}
		mode, err := topology.ParseMode(name)
		if err != nil {
			return nil, err
		}
		switch key {
		case "u", "o", "r":
		default:
			return nil, fmt.Errorf("override %q: unknown key %q", kv, key)
		}
		if pins[mode] == nil {
			pins[mode] = map[string]string{}
		}
		pins[mode][key] = strings.TrimSpace(parts[1])
	}
	return pins, nil
}

// runScenario seeds one grid per seed and advances it for cfg.steps
// generations, recording the final population and the first generation
// that changed nothing.
func runScenario(cfg sweepConfig, sc scenario) scenarioResult {
	res := scenarioResult{scenario: sc}
	engine := life.NewEngine(life.DefaultRules())
	var popSum, stableSum float64
	for _, seed := range cfg.seeds {
		g, err := grid.New(sc.mode, cfg.size, cfg.width, cfg.height)
		if err != nil {
			res.err = err
			return res
		}
		g.Randomize(core.NewRNG(seed), cfg.density)

		stableAt := -1
		for step := 0; step < cfg.steps; step++ {
			engine.StepWith(g, sc.rule)
			if engine.Stable() {
				stableAt = g.Generation()
				break
			}
		}

		pop := g.Population()
		popSum += float64(pop)
		if pop == 0 {
			res.extinct++
		}
		if stableAt >= 0 {
			res.stableRuns++
			stableSum += float64(stableAt)
		}
		res.runs++
	}
	if res.runs > 0 {
		res.population = popSum / float64(res.runs)
	}
	if res.stableRuns > 0 {
		res.stableAt = stableSum / float64(res.stableRuns)
	}
	return res
}

func rank(results []scenarioResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score() > results[j].score()
	})
}
