package internal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"clock_tui/internal/driver"
	"clock_tui/internal/widget"
)

// MsgTick carries one driver tick onto the program's event loop.
type MsgTick struct {
	driver *loopDriver
	fn     func()
}

// loopDriver is only stopped and checked from the event loop, so a tick
// queued before Stop is dropped when it arrives.
type loopDriver struct {
	ticker  *driver.Ticker
	stopped bool
}

func (d *loopDriver) Stop() {
	d.stopped = true
	d.ticker.Stop()
}

// loopScheduler runs tick sources in the background and delivers their
// callbacks through send, so every callback executes inside Update.
type loopScheduler struct {
	clock clockwork.Clock
	send  func(tea.Msg)
}

func (s *loopScheduler) Schedule(interval time.Duration, fn func()) widget.Driver {
	d := &loopDriver{ticker: driver.New(s.clock, interval)}
	send := s.send
	d.ticker.Start(func() {
		if send != nil {
			send(MsgTick{driver: d, fn: fn})
		}
	})
	return d
}
