package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global key bindings. Keys not listed here go to the
// focused widget.
type KeyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	Provider  key.Binding
	Class     key.Binding
	View      key.Binding
	Config    key.Binding
	Refresh   key.Binding
	Left      key.Binding
	Right     key.Binding
	Leave     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Provider: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "provider"),
		),
		Class: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "model class"),
		),
		View: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "switch view"),
		),
		Config: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "settings"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "up", "k"),
			key.WithHelp("←/→", "move"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "down", "j"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear focus"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Provider, k.Class, k.View, k.Refresh, k.Config, k.Quit}
}
