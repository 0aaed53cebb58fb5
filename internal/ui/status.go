// Package ui draws the panels around the grid view.
package ui

import (
	"fmt"
	"math"
	"strings"

	"tilelife/internal/core"
)

// Source is what the panels read from: a named provider of parameters.
type Source interface {
	Name() string
	core.ParameterProvider
}

var keyHelp = []string{
	"space  run / pause",
	"n      single step",
	"c      clear",
	"s      random seed",
	"m      next tiling",
	"z      next size",
	"p      picking view",
	"q      quit",
}

func panelTitle(src Source) string {
	if src == nil {
		return "Controls"
	}
	name := src.Name()
	if name == "" {
		return "Controls"
	}
	return name + " rule"
}

// StatusLine summarizes a snapshot in one line: tiling and size, the
// generation, the population and whether the clock is running.
func StatusLine(snap core.ParameterSnapshot) string {
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "?"
	}
	state := "paused"
	if value("running") == "true" {
		state = "running"
	}
	return fmt.Sprintf("%s %s  gen %s  pop %s  %s",
		value("mode"), value("size"), value("generation"), value("population"), state)
}

// RuleLine renders the thresholds of the active rule.
func RuleLine(snap core.ParameterSnapshot) string {
	var b strings.Builder
	for _, key := range []string{"u", "o", "r"} {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}

// adjustInt applies one step in direction and clamps to the control's
// bounds. It reports false when the value would not change.
func adjustInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != current
}
