package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Back    key.Binding
	Forward key.Binding
	Play    key.Binding
	Rewind  key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "progress -1"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "progress +1"),
		),
		Play: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a", "auto-advance"),
		),
		Rewind: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rewind"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy range"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Play, k.Rewind, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
