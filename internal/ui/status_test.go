package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tilelife/internal/core"
)

type fakeSource struct {
	name string
	snap core.ParameterSnapshot
}

func (f fakeSource) Name() string { return f.name }
func (f fakeSource) Parameters() core.ParameterSnapshot { return f.snap }

func snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			{Key: "mode", Value: "hexagon"},
			{Key: "size", Value: "S"},
		}},
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "generation", Value: "12"},
			{Key: "population", Value: "40"},
			{Key: "running", Value: "true"},
		}},
		{Name: "Rule", Params: []core.Parameter{
			{Key: "u", Value: "2"},
			{Key: "o", Value: "3"},
			{Key: "r", Value: "3"},
		}},
	}}
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "hexagon S  gen 12  pop 40  running", StatusLine(snapshot()))
	assert.Equal(t, "? ?  gen ?  pop ?  paused", StatusLine(core.ParameterSnapshot{}))
}

func TestRuleLine(t *testing.T) {
	assert.Equal(t, "u=2 o=3 r=3", RuleLine(snapshot()))
	assert.Empty(t, RuleLine(core.ParameterSnapshot{}))
}

func TestPanelTitle(t *testing.T) {
	assert.Equal(t, "Controls", panelTitle(nil))
	assert.Equal(t, "Controls", panelTitle(fakeSource{}))
	assert.Equal(t, "square L rule", panelTitle(fakeSource{name: "square L"}))
}

func TestAdjustIntClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Step: 1, Min: 0, Max: 12, HasMin: true, HasMax: true}

	v, ok := adjustInt(ctrl, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = adjustInt(ctrl, 0, -1)
	assert.False(t, ok)
	_, ok = adjustInt(ctrl, 12, 1)
	assert.False(t, ok)

	ctrl.Step = 5
	v, ok = adjustInt(ctrl, 10, 1)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	v, ok = adjustInt(core.ParameterControl{}, -4, -1)
	assert.True(t, ok)
	assert.Equal(t, -5, v)
}
