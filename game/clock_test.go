package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lguibr/plethora/utils"
)

// FakeTimer records whether it was stopped.
type FakeTimer struct {
	Period     time.Duration
	Generation int
	Stopped    bool
}

func (t *FakeTimer) Stop() { t.Stopped = true }

// FakeClock hands out FakeTimers and never fires on its own.
type FakeClock struct {
	Timers []*FakeTimer
}

func (c *FakeClock) Start(period time.Duration, generation int) TimerHandle {
	timer := &FakeTimer{Period: period, Generation: generation}
	c.Timers = append(c.Timers, timer)
	return timer
}

// Running returns the timers that were not stopped.
func (c *FakeClock) Running() []*FakeTimer {
	var out []*FakeTimer
	for _, t := range c.Timers {
		if !t.Stopped {
			out = append(out, t)
		}
	}
	return out
}

// Latest is the most recently started timer.
func (c *FakeClock) Latest() *FakeTimer {
	if len(c.Timers) == 0 {
		return nil
	}
	return c.Timers[len(c.Timers)-1]
}

// FixedSeedConfig is the default config with a fixed seed.
func FixedSeedConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.RandomSeed = 1
	return cfg
}

func newTestMatch(t *testing.T, setup Setup, sound SoundPlayer) *Match {
	t.Helper()
	m, err := NewMatch(FixedSeedConfig(), setup, sound, &FakeClock{}, nil)
	require.NoError(t, err)
	return m
}
