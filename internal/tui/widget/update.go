package widget

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes a message to the control. Keys reach the edit buffer only
// while the control is focused; every buffer change is committed through
// the engine and the buffer is rewritten when the engine disagrees.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if msg.ID != m.spinner.ID() {
			return m, nil
		}
		if !m.loading() {
			// Dropping the tick stops the spinner.
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.input.Focused() || m.Disabled() {
			return m, nil
		}
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if !m.input.Focused() {
		return m, nil
	}

	before := m.buffer()
	var cmd tea.Cmd
	if m.preset.Multiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.text, cmd = m.text.Update(msg)
	}
	if after := m.buffer(); after != before && after != m.input.Value() {
		m.commit(after)
		m.syncBuffer()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		if m.input.Clear() {
			m.syncBuffer()
			m.refreshSuggestions()
			m.resize()
		}
		return true, nil

	case key.Matches(msg, m.keys.Reveal):
		m.revealed = !m.revealed
		m.applyEcho()
		return true, nil

	case len(m.suggestions) > 0 && key.Matches(msg, m.keys.NextSuggestion):
		m.selected = (m.selected + 1) % len(m.suggestions)
		return true, nil

	case len(m.suggestions) > 0 && key.Matches(msg, m.keys.PrevSuggestion):
		m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
		return true, nil

	case len(m.suggestions) > 0 && key.Matches(msg, m.keys.AcceptSuggestion):
		choice := m.suggestions[m.selected]
		m.commit(choice)
		m.syncBuffer()
		m.suggestions = nil
		m.selected = 0
		return true, nil
	}
	return false, nil
}
