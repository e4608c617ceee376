package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the search box and chip modes
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Accept      key.Binding
	Dismiss     key.Binding
	SwitchFocus key.Binding
	PrevChip    key.Binding
	NextChip    key.Binding
	RemoveChip  key.Binding
	ClearAll    key.Binding
	AutoRefresh key.Binding
	Inline      key.Binding
	Help        key.Binding
	Pager       key.Binding
	Quit        key.Binding
	Leave       key.Binding // quit from the chip row, where letters are not typed
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous item"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next item"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select / search"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "filters / search box"),
		),
		PrevChip: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous filter"),
		),
		NextChip: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next filter"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("enter", " ", "backspace", "delete"),
			key.WithHelp("del", "remove filter"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		AutoRefresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "auto refresh"),
		),
		Inline: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "inline suggestions"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Pager: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (filters)"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Accept, k.Dismiss, k.SwitchFocus, k.Pager, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Accept, k.Dismiss, k.SwitchFocus},
		{k.PrevChip, k.NextChip, k.RemoveChip, k.ClearAll},
		{k.AutoRefresh, k.Inline, k.Help, k.Pager, k.Quit, k.Leave},
	}
}
