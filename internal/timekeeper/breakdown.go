package timekeeper

import (
	"fmt"
	"time"
)

// Breakdown splits a number of seconds into hours, minutes and seconds.
// Hours are not bounded.
type Breakdown struct {
	Hours   uint64
	Minutes uint64
	Seconds uint64
}

// HandAngles holds the rotation of the three clock hands in degrees.
// 90 is the rest position, pointing at 12.
type HandAngles struct {
	Second float64
	Minute float64
	Hour   float64
}

// Rest is the angle every hand shows at 00:00:00.
const Rest = 90.0

func FromSeconds(total uint64) Breakdown {
	hours := total / 3600
	minutes := (total - hours*3600) / 60
	return Breakdown{
		Hours:   hours,
		Minutes: minutes,
		Seconds: total - hours*3600 - minutes*60,
	}
}

// FromWallClock reads the hour (0-23), minute and second of now.
func FromWallClock(now time.Time) Breakdown {
	return Breakdown{
		Hours:   uint64(now.Hour()),
		Minutes: uint64(now.Minute()),
		Seconds: uint64(now.Second()),
	}
}

func (b Breakdown) TotalSeconds() uint64 {
	return b.Hours*3600 + b.Minutes*60 + b.Seconds
}

func (b Breakdown) String() string {
	return FormatDigital(b)
}

// FormatDigital renders b as HH:MM:SS using the raw hour count.
func FormatDigital(b Breakdown) string {
	return fmt.Sprintf("%02d:%02d:%02d", b.Hours, b.Minutes, b.Seconds)
}

// AnglesOf converts b into hand angles. The hour hand uses hours mod 12 so a
// stopwatch past twelve hours keeps the same face geometry as a wall clock.
func AnglesOf(b Breakdown) HandAngles {
	return HandAngles{
		Second: float64(b.Seconds%60)*6 + Rest,
		Minute: float64(b.Minutes%60)*6 + Rest,
		Hour:   float64(b.Hours%12)*30 + Rest,
	}
}
