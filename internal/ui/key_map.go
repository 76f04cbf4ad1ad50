package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	back    key.Binding
	filter  key.Binding
	palette key.Binding
	fix     key.Binding
	toggle  key.Binding
	refresh key.Binding
	repair  key.Binding
	yes     key.Binding
	no      key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		palette: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "tags")),
		fix:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "fix metadata")),
		toggle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle status")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		repair:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "repair")),
		yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.enter, k.filter, k.palette, k.back},
		{k.fix, k.toggle, k.refresh, k.repair},
		{k.yes, k.no, k.quit},
	}
}
