package internal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Mode    key.Binding
	Toggle  key.Binding
	Lap     key.Binding
	Reset   key.Binding
	Up      key.Binding
	Down    key.Binding
	History key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Mode: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "stopwatch"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
			key.WithDisabled(),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
			key.WithDisabled(),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
			key.WithDisabled(),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Toggle, k.Lap, k.Reset, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Toggle, k.Lap, k.Reset},
		{k.Up, k.Down, k.History, k.Quit},
	}
}
