package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/ui/components"
)

// View renders the framed control, search matches or the chosen files, and
// the key help of a focused control.
func (m Model) View() string {
	ctx := m.context()
	f := m.frame()
	if m.live() {
		if m.preset.Multiline {
			f.WithContent(m.area.View())
		} else {
			f.WithContent(m.text.View())
		}
	}

	lines := []string{f.ViewWithContext(ctx)}

	if len(m.suggestions) > 0 {
		for i, s := range m.suggestions {
			marker := "  "
			text := components.HelpText(s)
			if i == m.selected {
				marker = "› "
				text = components.NewText(s).WithAppliers(components.Foreground(components.PalettePrimary))
			}
			lines = append(lines, marker+text.ViewWithContext(ctx))
		}
	}

	if m.preset.Kind == kinds.File && m.input.Value() != "" && !m.input.Focused() {
		if desc := kinds.Describe(m.input.Value(), m.stat); desc != "" {
			lines = append(lines, components.HelpText(desc).ViewWithContext(ctx))
		}
	}

	if m.input.Focused() {
		if h := m.help.ShortHelpView(m.keys.ShortHelp()); h != "" {
			lines = append(lines, h)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// frame builds the field component for the current state; the suffix of a
// revealable secret flips with the toggle.
func (m Model) frame() *components.Field {
	f := components.NewField(m.input).
		WithWidth(m.width).
		WithSecret(m.preset.Secret && !m.revealed).
		WithSpinner(m.spinner.View())
	if m.keys.Reveal.Enabled() && m.revealed {
		f.WithSuffix(kinds.IconShown)
	}
	return f
}

// live reports whether the edit buffer is drawn instead of the stored
// value. Blurred multi-line values keep their line breaks this way.
func (m Model) live() bool {
	return m.input.Focused() || (m.preset.Multiline && m.input.Value() != "")
}
