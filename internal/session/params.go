package session

import (
	"strconv"

	"tilelife/internal/core"
	"tilelife/internal/topology"
)

// Parameters reports the grid and the active rule for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	g := s.grid
	rule := s.Rule()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				stringParam("mode", "Tiling", g.Mode().String()),
				stringParam("size", "Size class", g.Size().String()),
				intParam("rows", "Rows", g.Rows()),
				intParam("cols", "Columns", g.Cols()),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("generation", "Generation", g.Generation()),
				intParam("population", "Population", g.Population()),
				boolParam("running", "Running", s.Running()),
			},
		},
		{
			Name:    "Rule",
			Summary: "thresholds for " + g.Mode().String(),
			Params: []core.Parameter{
				intParam("u", "Underpopulation", rule.Underpopulation),
				intParam("o", "Overpopulation", rule.Overpopulation),
				intParam("r", "Reproduction", rule.Reproduction),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule thresholds the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	ctrl := func(key, label string) core.ParameterControl {
		return core.ParameterControl{
			Key:    key,
			Label:  label,
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    topology.MaxNeighbors,
			HasMin: true,
			HasMax: true,
		}
	}
	return []core.ParameterControl{
		ctrl("u", "Underpop."),
		ctrl("o", "Overpop."),
		ctrl("r", "Reprod."),
	}
}

// SetIntParameter updates one threshold of the active rule. It reports
// false for unknown keys and values the rule rejects.
func (s *Session) SetIntParameter(key string, value int) bool {
	rule := s.Rule()
	switch key {
	case "u":
		rule.Underpopulation = value
	case "o":
		rule.Overpopulation = value
	case "r":
		rule.Reproduction = value
	default:
		return false
	}
	if err := s.SetRule(rule); err != nil {
		s.log.Warn("rule rejected", "key", key, "value", value, "err", err)
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
