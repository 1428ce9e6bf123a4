package internal

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"clock_tui/internal/archive"
)

// SessionRows formats archived sessions for tabular display, one row each.
// With showID the session id leads each row.
func SessionRows(sessions []archive.Session, showID bool) [][]string {
	return lo.Map(sessions, func(s archive.Session, _ int) []string {
		best := "-"
		if l, ok := s.Fastest(); ok {
			best = fmt.Sprintf("#%d %s", l.Index, l.Lap)
		}
		row := []string{
			s.EndedAt.Local().Format("Jan 02 15:04"),
			s.Total().String(),
			fmt.Sprintf("%d", len(s.Laps)),
			best,
		}
		if showID {
			row = append([]string{s.ID}, row...)
		}
		return row
	})
}

// SessionTable renders sessions as a bordered table.
func SessionTable(sessions []archive.Session, showID bool) string {
	headers := []string{"Ended", "Total", "Laps", "Fastest Lap"}
	if showID {
		headers = append([]string{"ID"}, headers...)
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(SessionRows(sessions, showID)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lapHeaderStyle
			}
			return lapCellStyle
		}).
		Render()
}
