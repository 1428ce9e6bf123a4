package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clock_tui/internal/widget"
)

const (
	viewWidth  = 60
	viewHeight = 24
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	digitalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	digitalRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	lapHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Padding(0, 1)

	lapCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	trailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("237"))

	secondHandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	minuteHandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69"))

	hourHandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m *Model) title() string {
	if m.ctl.Mode() == widget.ModeClock {
		return "Clock"
	}
	return "Stopwatch"
}

func (m *Model) status() string {
	if m.ctl.Mode() == widget.ModeClock {
		return inactiveStyle.Render("live")
	}
	switch m.ctl.RunState() {
	case widget.Running:
		return runningStyle.Render("Running")
	case widget.Paused:
		return inactiveStyle.Render("Paused")
	default:
		return inactiveStyle.Render("Stopped")
	}
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(viewWidth).Render(m.title()))
	sb.WriteString("\n\n")

	digital := digitalStyle.Render(m.face.digital)
	if m.face.running {
		digital = digitalRunningStyle.Render(m.face.digital)
	}
	readout := fmt.Sprintf("%s\n\n%s", digital, m.status())

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		boxStyle.Render(m.face.dial()),
		"  ",
		readout,
	))
	sb.WriteString("\n")

	if laps := m.face.lapTable(); m.face.stopwatch && laps != "" {
		sb.WriteString(laps)
		sb.WriteString("\n")
	}

	if m.Err != nil {
		sb.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m *Model) historyView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(viewWidth).Render("Session History"))
	sb.WriteString("\n\n")

	if len(m.History) == 0 {
		sb.WriteString(inactiveStyle.Render("No archived sessions yet. Record a lap, then reset."))
	} else {
		visible := m.History[m.HistoryScroll:]
		if len(visible) > viewHeight/2 {
			visible = visible[:viewHeight/2]
		}
		sb.WriteString(SessionTable(visible, false))
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render(fmt.Sprintf("%d of %d", m.HistoryScroll+1, len(m.History))))
	}

	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("Scroll: Up/Down | Back: Esc/h | Quit: ctrl+c"))
	return sb.String()
}
