package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"

	"clock_tui/internal/lapledger"
	"clock_tui/internal/timekeeper"
)

const (
	faceRadius = 5
	// terminal cells are about twice as tall as wide
	faceAspect = 2
)

// face is the terminal rendering surface driven by the widget controller.
type face struct {
	hands timekeeper.HandAngles
	prev  timekeeper.HandAngles
	// trail is false for a hand that just snapped back to rest, so no
	// motion trail is drawn across the face.
	trail [3]bool

	digital string

	laps      [][]string
	lapRows   int
	lapOffset int

	running   bool
	stopwatch bool
	keys      *keyMap
}

func newFace(keys *keyMap, lapRows int) *face {
	return &face{
		hands:   timekeeper.HandAngles{Second: timekeeper.Rest, Minute: timekeeper.Rest, Hour: timekeeper.Rest},
		prev:    timekeeper.HandAngles{Second: timekeeper.Rest, Minute: timekeeper.Rest, Hour: timekeeper.Rest},
		digital: "00:00:00",
		lapRows: lapRows,
		keys:    keys,
	}
}

func (f *face) RenderHands(secondDeg, minuteDeg, hourDeg float64) {
	f.prev = f.hands
	f.hands = timekeeper.HandAngles{Second: secondDeg, Minute: minuteDeg, Hour: hourDeg}
	f.trail = [3]bool{
		secondDeg != timekeeper.Rest && secondDeg != f.prev.Second,
		minuteDeg != timekeeper.Rest && minuteDeg != f.prev.Minute,
		hourDeg != timekeeper.Rest && hourDeg != f.prev.Hour,
	}
}

func (f *face) RenderDigital(text string) {
	f.digital = text
}

func (f *face) RenderLapRow(rec lapledger.Record) {
	f.laps = append(f.laps, []string{
		fmt.Sprintf("%d", rec.Index),
		rec.Lap.String(),
		rec.Cumulative.String(),
	})
	f.lapOffset = f.maxLapOffset()
}

func (f *face) ClearLapDisplay() {
	f.laps = nil
	f.lapOffset = 0
}

func (f *face) SetControlsEnabled(running bool) {
	f.running = running
	f.syncKeys()
}

func (f *face) SetStopwatchVisible(visible bool) {
	f.stopwatch = visible
	f.syncKeys()
}

func (f *face) syncKeys() {
	f.keys.Toggle.SetEnabled(f.stopwatch)
	f.keys.Reset.SetEnabled(f.stopwatch)
	f.keys.Lap.SetEnabled(f.stopwatch && f.running)
	f.keys.Up.SetEnabled(f.stopwatch)
	f.keys.Down.SetEnabled(f.stopwatch)

	if f.running {
		f.keys.Toggle.SetHelp("space", "pause")
	} else {
		f.keys.Toggle.SetHelp("space", "start")
	}
	if f.stopwatch {
		f.keys.Mode.SetHelp("m", "clock")
	} else {
		f.keys.Mode.SetHelp("m", "stopwatch")
	}
}

func (f *face) maxLapOffset() int {
	return max(len(f.laps)-f.lapRows, 0)
}

func (f *face) scrollLaps(delta int) {
	f.lapOffset = min(max(f.lapOffset+delta, 0), f.maxLapOffset())
}

// visibleLaps returns the window of rows shown in the lap table. Once more
// than lapRows laps exist the table keeps a fixed height and scrolls.
func (f *face) visibleLaps() [][]string {
	end := min(f.lapOffset+f.lapRows, len(f.laps))
	return f.laps[f.lapOffset:end]
}

// lapTable renders nothing until the first lap is recorded. In lipgloss
// v0.11 the header is row 0 of StyleFunc.
func (f *face) lapTable() string {
	if len(f.laps) == 0 {
		return ""
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Lap", "Lap Time", "Total Time").
		Rows(f.visibleLaps()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lapHeaderStyle
			}
			return lapCellStyle
		})

	out := t.Render()
	if hidden := len(f.laps) - len(f.visibleLaps()); hidden > 0 {
		above := f.lapOffset
		below := hidden - above
		out += "\n" + helpStyle.Render(fmt.Sprintf("↑ %d more  ↓ %d more", above, below))
	}
	return out
}

type cell struct {
	r     rune
	style *lipgloss.Style
}

// dial draws the analog face on a character grid.
func (f *face) dial() string {
	size := 2*faceRadius + 1
	width := faceAspect*2*faceRadius + 1
	grid := make([][]cell, size)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{r: ' '}
		}
	}

	put := func(deg, radius float64, r rune, style *lipgloss.Style, overwrite bool) {
		theta := (deg - timekeeper.Rest) * math.Pi / 180
		col := faceRadius*faceAspect + int(math.Round(faceAspect*radius*math.Sin(theta)))
		row := faceRadius - int(math.Round(radius*math.Cos(theta)))
		if row < 0 || row >= size || col < 0 || col >= width {
			return
		}
		if !overwrite && grid[row][col].r != ' ' {
			return
		}
		grid[row][col] = cell{r: r, style: style}
	}

	hand := func(deg, length float64, r rune, style *lipgloss.Style) {
		for radius := 1.0; radius <= length; radius += 0.5 {
			put(deg, radius, r, style, true)
		}
	}

	for i := 0; i < 12; i++ {
		mark := '·'
		if i%3 == 0 {
			mark = '◆'
		}
		put(float64(i)*30+timekeeper.Rest, faceRadius, mark, &markStyle, true)
	}

	if f.trail[0] {
		put(f.prev.Second, faceRadius-1, '∙', &trailStyle, false)
	}
	hand(f.hands.Second, faceRadius-1, '•', &secondHandStyle)
	hand(f.hands.Minute, faceRadius-1.5, '█', &minuteHandStyle)
	hand(f.hands.Hour, faceRadius-2.5, '█', &hourHandStyle)
	grid[faceRadius][faceRadius*faceAspect] = cell{r: '●', style: &hourHandStyle}

	lines := lo.Map(grid, func(row []cell, _ int) string {
		var sb strings.Builder
		for _, c := range row {
			if c.style == nil {
				sb.WriteRune(c.r)
				continue
			}
			sb.WriteString(c.style.Render(string(c.r)))
		}
		return sb.String()
	})
	return strings.Join(lines, "\n")
}
