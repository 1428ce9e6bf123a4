package internal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clock_tui/internal/archive"
	"clock_tui/internal/lapledger"
	"clock_tui/internal/timekeeper"
)

func TestSessionTable(t *testing.T) {
	ended := time.Date(2024, 3, 9, 18, 20, 0, 0, time.Local)
	sessions := []archive.Session{
		{
			ID:           "3f2a",
			EndedAt:      ended,
			TotalSeconds: 42,
			Laps: []lapledger.Record{
				{Index: 1, Lap: timekeeper.FromSeconds(30), Cumulative: timekeeper.FromSeconds(30)},
				{Index: 2, Lap: timekeeper.FromSeconds(12), Cumulative: timekeeper.FromSeconds(42)},
			},
		},
		{EndedAt: ended.Add(-time.Hour), TotalSeconds: 5},
	}

	rows := SessionRows(sessions, false)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Mar 09 18:20", "00:00:42", "2", "#2 00:00:12"}, rows[0])
	assert.Equal(t, "-", rows[1][3])

	lines := strings.Split(SessionTable(sessions, false), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Contains(t, lines[1], "Fastest Lap")
	assert.NotContains(t, lines[1], "ID")
	assert.Contains(t, lines[3], "#2 00:00:12")
	assert.Contains(t, lines[4], "Mar 09 17:20")

	withID := SessionRows(sessions, true)
	assert.Equal(t, "3f2a", withID[0][0])
	lines = strings.Split(SessionTable(sessions, true), "\n")
	assert.Contains(t, lines[1], "ID")
	assert.Contains(t, lines[3], "3f2a")
}
