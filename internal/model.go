package internal

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"clock_tui/internal/archive"
	"clock_tui/internal/widget"
)

const historyLimit = 50

var errArchiveDisabled = errors.New("session archive is disabled")

type Options struct {
	Clock     clockwork.Clock
	Logger    *log.Logger
	Store     *archive.Repository
	StartMode widget.Mode
	LapRows   int
}

type Model struct {
	ctl       *widget.Controller
	face      *face
	keys      *keyMap
	help      help.Model
	scheduler *loopScheduler
	store     *archive.Repository
	logger    *log.Logger
	startMode widget.Mode
	Err       error

	// Archived session viewer state
	ShowHistory   bool
	HistoryScroll int
	History       []archive.Session
}

func NewModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.LapRows <= 0 {
		opts.LapRows = 7
	}

	keys := newKeyMap()
	f := newFace(&keys, opts.LapRows)
	sched := &loopScheduler{clock: opts.Clock}

	ctlOpts := []widget.Option{
		widget.WithClock(opts.Clock),
		widget.WithLogger(opts.Logger),
	}
	if opts.Store != nil {
		ctlOpts = append(ctlOpts, widget.WithSessionStore(opts.Store))
	}

	return &Model{
		ctl:       widget.New(f, sched, ctlOpts...),
		face:      f,
		keys:      &keys,
		help:      help.New(),
		scheduler: sched,
		store:     opts.Store,
		logger:    opts.Logger,
		startMode: opts.StartMode,
	}
}

// Attach sets the function used to post driver ticks to the running
// program. It must be called before the program starts.
func (m *Model) Attach(send func(tea.Msg)) {
	m.scheduler.send = send
}

func (m *Model) Init() tea.Cmd {
	m.ctl.Init()
	if m.startMode == widget.ModeStopwatch {
		m.ctl.SwitchToStopwatch()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		if !msg.driver.stopped {
			msg.fn()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowHistory {
		return m.historyView()
	}
	return m.mainView()
}

func (m *Model) Controller() *widget.Controller {
	return m.ctl
}

// Close stops the active driver and archives any pending laps.
func (m *Model) Close() {
	m.ctl.Close()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHistory {
		return m.handleHistoryInput(msg)
	}

	m.Err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Mode):
		m.ctl.ToggleMode()
	case key.Matches(msg, m.keys.Toggle):
		m.ctl.Toggle()
	case key.Matches(msg, m.keys.Lap):
		m.ctl.RecordLap()
	case key.Matches(msg, m.keys.Reset):
		m.ctl.Reset()
	case key.Matches(msg, m.keys.Up):
		m.face.scrollLaps(-1)
	case key.Matches(msg, m.keys.Down):
		m.face.scrollLaps(1)
	case key.Matches(msg, m.keys.History):
		m.openHistory()
	}
	return m, nil
}

func (m *Model) openHistory() {
	if m.store == nil {
		m.Err = errArchiveDisabled
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	sessions, err := m.store.List(ctx, historyLimit)
	if err != nil {
		m.logger.Error("failed to load history", "err", err)
		m.Err = err
		return
	}
	m.History = sessions
	m.HistoryScroll = 0
	m.ShowHistory = true
}

func (m *Model) handleHistoryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc", "h":
		m.ShowHistory = false
		m.History = nil
	case "up", "k":
		if m.HistoryScroll > 0 {
			m.HistoryScroll--
		}
	case "down", "j":
		maxScroll := max(len(m.History)-1, 0)
		if m.HistoryScroll < maxScroll {
			m.HistoryScroll++
		}
	}
	return m, nil
}
