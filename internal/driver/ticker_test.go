package driver

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitTick(t *testing.T, ticks <-chan struct{}) {
	t.Helper()
	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestTickerFiresEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tk := New(clock, time.Second)
	ticks := make(chan struct{}, 10)

	tk.Start(func() { ticks <- struct{}{} })
	defer tk.Stop()
	require.True(t, tk.Running())

	clock.BlockUntil(1)
	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		waitTick(t, ticks)
	}
}

func TestTickerStartIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tk := New(clock, time.Second)
	ticks := make(chan struct{}, 10)
	fn := func() { ticks <- struct{}{} }

	tk.Start(fn)
	tk.Start(fn)
	defer tk.Stop()

	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)

	select {
	case <-ticks:
		t.Fatal("second Start spawned another driver")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTickerStopIsIdempotent(t *testing.T) {
	tk := New(clockwork.NewFakeClock(), time.Second)
	tk.Stop()
	assert.False(t, tk.Running())

	tk.Start(func() {})
	tk.Stop()
	tk.Stop()
	assert.False(t, tk.Running())
}

func TestTickerRestart(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tk := New(clock, time.Second)
	ticks := make(chan struct{}, 10)

	tk.Start(func() { ticks <- struct{}{} })
	clock.BlockUntil(1)
	tk.Stop()
	clock.BlockUntil(0)

	tk.Start(func() { ticks <- struct{}{} })
	defer tk.Stop()
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	waitTick(t, ticks)
	assert.True(t, tk.Running())
}
