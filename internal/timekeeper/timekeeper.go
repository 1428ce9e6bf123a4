// Package timekeeper counts stopwatch seconds and converts them into
// breakdowns, digital strings and hand angles.
package timekeeper

// TimeKeeper tracks total elapsed seconds and the seconds since the last lap
// boundary. It is not safe for concurrent use; callers deliver ticks and
// commands from a single goroutine.
type TimeKeeper struct {
	elapsed    uint64
	lapElapsed uint64
}

func New() *TimeKeeper {
	return &TimeKeeper{}
}

// Tick advances both counters by one second.
func (k *TimeKeeper) Tick() {
	k.elapsed++
	k.lapElapsed++
}

func (k *TimeKeeper) ElapsedSeconds() uint64 {
	return k.elapsed
}

func (k *TimeKeeper) LapElapsedSeconds() uint64 {
	return k.lapElapsed
}

func (k *TimeKeeper) Elapsed() Breakdown {
	return FromSeconds(k.elapsed)
}

// CloseLap returns the seconds of the current lap and starts a new one.
func (k *TimeKeeper) CloseLap() uint64 {
	lap := k.lapElapsed
	k.lapElapsed = 0
	return lap
}

func (k *TimeKeeper) Reset() {
	k.elapsed = 0
	k.lapElapsed = 0
}
