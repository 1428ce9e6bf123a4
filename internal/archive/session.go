// Package archive stores finished stopwatch sessions and their laps.
package archive

import (
	"time"

	"clock_tui/internal/lapledger"
	"clock_tui/internal/timekeeper"
)

// Session is a stopwatch run that recorded at least one lap.
type Session struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	TotalSeconds uint64
	Laps         []lapledger.Record
}

func (s Session) Total() timekeeper.Breakdown {
	return timekeeper.FromSeconds(s.TotalSeconds)
}

// Fastest returns the shortest lap, or false when the session has none.
func (s Session) Fastest() (lapledger.Record, bool) {
	if len(s.Laps) == 0 {
		return lapledger.Record{}, false
	}
	best := s.Laps[0]
	for _, l := range s.Laps[1:] {
		if l.Lap.TotalSeconds() < best.Lap.TotalSeconds() {
			best = l
		}
	}
	return best, true
}
