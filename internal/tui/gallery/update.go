package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles gallery keys and window sizing. Keys it does not own go to
// the focused control; everything else is broadcast so spinners and cursor
// blinks reach the control they belong to.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for i := range m.widgets {
		var cmd tea.Cmd
		m.widgets[i], cmd = m.widgets[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	if m.focus < 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.widgets[m.focus], cmd = m.widgets[m.focus].Update(msg)
	m.syncViewport()
	return m, cmd
}
