package widget

import (
	"context"
	"time"

	"clock_tui/internal/archive"
	"clock_tui/internal/lapledger"
)

// Renderer is the display surface the controller draws on.
type Renderer interface {
	// RenderHands positions the three hands. Angles are in degrees; 90 is
	// the rest position at 12.
	RenderHands(secondDeg, minuteDeg, hourDeg float64)
	RenderDigital(text string)
	RenderLapRow(rec lapledger.Record)
	// ClearLapDisplay removes every lap row and leaves only the header.
	ClearLapDisplay()
	// SetControlsEnabled enables lap recording and labels the start/pause
	// control as "pause" when running is true.
	SetControlsEnabled(running bool)
	SetStopwatchVisible(visible bool)
}

// Driver is a handle on a scheduled periodic callback. Stop must be
// idempotent.
type Driver interface {
	Stop()
}

type Scheduler interface {
	Schedule(interval time.Duration, fn func()) Driver
}

// SessionStore receives lap sessions before they are cleared.
type SessionStore interface {
	Save(ctx context.Context, s *archive.Session) error
}
