// Package driver provides the periodic tick source behind the widget.
package driver

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Ticker calls a function once per interval until stopped. Start and Stop
// are idempotent and safe to call from any goroutine.
type Ticker struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	interval time.Duration
	running  bool
	stopChan chan struct{}
}

func New(clock clockwork.Clock, interval time.Duration) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Ticker{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins calling fn every interval. It does nothing if the ticker is
// already running.
func (t *Ticker) Start(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}

	t.running = true
	t.stopChan = make(chan struct{})
	stop := t.stopChan
	ticker := t.clock.NewTicker(t.interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				t.mu.Lock()
				running := t.running && t.stopChan == stop
				t.mu.Unlock()
				if !running {
					return
				}
				fn()
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.running = false
	close(t.stopChan)
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
