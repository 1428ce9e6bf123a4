package widget

type Mode int

const (
	ModeClock Mode = iota
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// RunState only has meaning in stopwatch mode.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
)

func (s RunState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// State is the combined position of the controller's state machine.
type State int

const (
	StateClock State = iota
	StateStopwatchIdle
	StateStopwatchRunning
	StateStopwatchPaused
)

func (s State) String() string {
	switch s {
	case StateClock:
		return "Clock"
	case StateStopwatchIdle:
		return "StopwatchIdle"
	case StateStopwatchRunning:
		return "StopwatchRunning"
	case StateStopwatchPaused:
		return "StopwatchPaused"
	default:
		return "Unknown"
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "clock":
		return ModeClock, true
	case "stopwatch":
		return ModeStopwatch, true
	default:
		return ModeClock, false
	}
}
