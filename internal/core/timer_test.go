package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerFiresOncePerIntervalWhileRunning(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tk := NewTicker(time.Second)

	assert.False(t, tk.Due(start), "paused ticker must not fire")
	tk.SetRunning(true)
	assert.False(t, tk.Due(start.Add(500*time.Millisecond)))
	assert.True(t, tk.Due(start.Add(1000*time.Millisecond)))
	assert.False(t, tk.Due(start.Add(1999*time.Millisecond)))
	assert.True(t, tk.Due(start.Add(2500*time.Millisecond)))

	// A long stall still yields a single tick.
	assert.True(t, tk.Due(start.Add(10*time.Second)))
	assert.False(t, tk.Due(start.Add(10*time.Second)))

	tk.SetRunning(false)
	assert.False(t, tk.Due(start.Add(20*time.Second)))
	assert.False(t, tk.Running())
}

func TestTickerIntervalDefaults(t *testing.T) {
	assert.Equal(t, DefaultTickInterval, NewTicker(0).Interval())
	tk := NewTicker(time.Second)
	tk.SetInterval(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, tk.Interval())
}

func TestRNGChance(t *testing.T) {
	r := NewRNG(1)
	assert.False(t, r.Chance(0))
	assert.True(t, r.Chance(1))

	a, b := NewRNG(5), NewRNG(5)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Chance(0.5), b.Chance(0.5))
	}
}
