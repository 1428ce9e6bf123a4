// Package widget drives the clock/stopwatch state machine. It owns the
// TimeKeeper, the LapLedger and the single periodic driver, and draws
// through a Renderer.
package widget

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"clock_tui/internal/archive"
	"clock_tui/internal/lapledger"
	"clock_tui/internal/timekeeper"
)

// TickInterval is the cadence of both the wall clock and the stopwatch.
const TickInterval = time.Second

const archiveTimeout = 2 * time.Second

// Controller is not safe for concurrent use. Commands and driver callbacks
// must be delivered from one goroutine.
type Controller struct {
	renderer  Renderer
	scheduler Scheduler
	clock     clockwork.Clock
	logger    *log.Logger
	store     SessionStore

	mode   Mode
	run    RunState
	driver Driver

	keeper    *timekeeper.TimeKeeper
	ledger    *lapledger.Ledger
	startedAt time.Time
}

type Option func(*Controller)

func WithClock(c clockwork.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithSessionStore archives lap sessions before they are cleared.
func WithSessionStore(s SessionStore) Option {
	return func(ctl *Controller) { ctl.store = s }
}

func New(r Renderer, s Scheduler, opts ...Option) *Controller {
	c := &Controller{
		renderer:  r,
		scheduler: s,
		mode:      ModeClock,
		run:       Idle,
		keeper:    timekeeper.New(),
		ledger:    lapledger.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Init shows the live clock and starts its driver.
func (c *Controller) Init() {
	c.renderer.SetStopwatchVisible(false)
	c.renderer.SetControlsEnabled(false)
	c.renderClock()
	c.replaceDriver(c.onClockTick)
}

func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) RunState() RunState { return c.run }

func (c *Controller) State() State {
	if c.mode == ModeClock {
		return StateClock
	}
	switch c.run {
	case Running:
		return StateStopwatchRunning
	case Paused:
		return StateStopwatchPaused
	default:
		return StateStopwatchIdle
	}
}

func (c *Controller) Elapsed() timekeeper.Breakdown { return c.keeper.Elapsed() }

func (c *Controller) LapElapsedSeconds() uint64 { return c.keeper.LapElapsedSeconds() }

func (c *Controller) Laps() []lapledger.Record { return c.ledger.All() }

// SwitchToStopwatch leaves clock mode with a zeroed stopwatch.
func (c *Controller) SwitchToStopwatch() {
	if c.mode == ModeStopwatch {
		return
	}
	c.stopDriver()
	c.mode = ModeStopwatch
	c.resetStopwatch()
	c.renderer.SetStopwatchVisible(true)
	c.logger.Debug("switched mode", "mode", c.mode)
}

// SwitchToClock discards the stopwatch run and resumes the live clock.
func (c *Controller) SwitchToClock() {
	if c.mode == ModeClock {
		return
	}
	c.stopDriver()
	c.resetStopwatch()
	c.mode = ModeClock
	c.renderer.SetStopwatchVisible(false)
	c.renderClock()
	c.replaceDriver(c.onClockTick)
	c.logger.Debug("switched mode", "mode", c.mode)
}

// ToggleMode flips between clock and stopwatch.
func (c *Controller) ToggleMode() {
	if c.mode == ModeClock {
		c.SwitchToStopwatch()
	} else {
		c.SwitchToClock()
	}
}

func (c *Controller) Start() {
	if c.mode != ModeStopwatch || c.run == Running {
		c.logger.Debug("ignoring start", "state", c.State())
		return
	}
	if c.run == Idle {
		c.startedAt = c.clock.Now()
	}
	c.run = Running
	c.replaceDriver(c.onStopwatchTick)
	c.renderer.SetControlsEnabled(true)
	c.logger.Debug("stopwatch started", "elapsed", c.keeper.Elapsed())
}

func (c *Controller) Pause() {
	if c.State() != StateStopwatchRunning {
		c.logger.Debug("ignoring pause", "state", c.State())
		return
	}
	c.stopDriver()
	c.run = Paused
	c.renderer.SetControlsEnabled(false)
	c.logger.Debug("stopwatch paused", "elapsed", c.keeper.Elapsed())
}

// Toggle is the start/pause control.
func (c *Controller) Toggle() {
	if c.run == Running {
		c.Pause()
	} else {
		c.Start()
	}
}

// Reset returns the stopwatch to idle at 00:00:00 with no laps. It is
// ignored in clock mode.
func (c *Controller) Reset() {
	if c.mode != ModeStopwatch {
		c.logger.Debug("ignoring reset", "state", c.State())
		return
	}
	c.stopDriver()
	c.resetStopwatch()
	c.logger.Debug("stopwatch reset")
}

// RecordLap appends a lap while the stopwatch runs and is ignored otherwise.
func (c *Controller) RecordLap() (lapledger.Record, bool) {
	if c.State() != StateStopwatchRunning {
		c.logger.Debug("ignoring lap", "state", c.State())
		return lapledger.Record{}, false
	}
	rec := c.ledger.Record(c.keeper)
	c.renderer.RenderLapRow(rec)
	c.logger.Debug("lap recorded", "index", rec.Index, "lap", rec.Lap, "total", rec.Cumulative)
	return rec, true
}

// Close stops the driver and archives any laps still on the ledger.
func (c *Controller) Close() {
	c.stopDriver()
	if c.mode == ModeStopwatch {
		c.run = Paused
	}
	c.archive()
	c.ledger.Clear()
}

func (c *Controller) onStopwatchTick() {
	if c.State() != StateStopwatchRunning {
		return
	}
	c.keeper.Tick()
	c.render(c.keeper.Elapsed())
}

func (c *Controller) onClockTick() {
	if c.mode != ModeClock {
		return
	}
	c.renderClock()
}

func (c *Controller) renderClock() {
	c.render(timekeeper.FromWallClock(c.clock.Now()))
}

func (c *Controller) render(b timekeeper.Breakdown) {
	a := timekeeper.AnglesOf(b)
	c.renderer.RenderHands(a.Second, a.Minute, a.Hour)
	c.renderer.RenderDigital(timekeeper.FormatDigital(b))
}

func (c *Controller) resetStopwatch() {
	c.archive()
	c.run = Idle
	c.keeper.Reset()
	c.ledger.Clear()
	c.startedAt = time.Time{}
	c.renderer.ClearLapDisplay()
	c.renderer.SetControlsEnabled(false)
	c.render(timekeeper.Breakdown{})
}

func (c *Controller) archive() {
	if c.store == nil || c.ledger.Len() == 0 {
		return
	}
	s := &archive.Session{
		StartedAt:    c.startedAt,
		EndedAt:      c.clock.Now(),
		TotalSeconds: c.keeper.ElapsedSeconds(),
		Laps:         c.ledger.All(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()
	if err := c.store.Save(ctx, s); err != nil {
		c.logger.Error("failed to archive session", "laps", len(s.Laps), "err", err)
		return
	}
	c.logger.Info("archived session", "id", s.ID, "laps", len(s.Laps), "total", s.Total())
}

// replaceDriver stops the active driver before scheduling fn, so at most one
// driver exists at any time.
func (c *Controller) replaceDriver(fn func()) {
	c.stopDriver()
	c.driver = c.scheduler.Schedule(TickInterval, fn)
}

func (c *Controller) stopDriver() {
	if c.driver == nil {
		return
	}
	c.driver.Stop()
	c.driver = nil
}
