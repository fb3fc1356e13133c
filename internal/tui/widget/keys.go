package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings a control handles on top of its edit buffer.
type KeyMap struct {
	Clear            key.Binding
	Reveal           key.Binding
	NextSuggestion   key.Binding
	PrevSuggestion   key.Binding
	AcceptSuggestion key.Binding
}

// DefaultKeyMap returns the default bindings. All of them start enabled;
// New disables the ones the control's kind does not use.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear:            key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Reveal:           key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "show/hide")),
		NextSuggestion:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next match")),
		PrevSuggestion:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev match")),
		AcceptSuggestion: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept match")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.Reveal, k.NextSuggestion, k.AcceptSuggestion}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear, k.Reveal},
		{k.NextSuggestion, k.PrevSuggestion, k.AcceptSuggestion},
	}
}
