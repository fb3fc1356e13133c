package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/ui/components"
)

// View renders the header, the scrolled controls and the key help.
func (m Model) View() string {
	ctx := m.context()

	subtitle := fmt.Sprintf("theme %s  ·  colors-primary %s  ·  colors-background %s",
		m.provider.Name(), m.vars.Var("colors-primary"), m.vars.Var("colors-background"))
	header := components.NewHeader(m.title).
		WithActions(components.SecondaryButton("theme").WithKey(m.keys.ToggleTheme)).
		WithSubtitle(subtitle).
		ViewWithContext(ctx)

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.err != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, components.ErrorText(m.err).ViewWithContext(ctx), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		components.NewDivider().WithWidth(m.width).ViewWithContext(ctx),
		m.viewport.View(),
		footer,
	)
}

// content renders every section and records the first row of each
// control so focus changes can scroll it into view.
func (m *Model) content() string {
	ctx := m.context()
	var blocks []string
	row := 0
	add := func(s string) {
		blocks = append(blocks, s)
		row += lipgloss.Height(s)
	}

	for si, s := range m.sections {
		if si > 0 {
			add("")
		}
		add(components.DottedDivider().WithLabel(s.title).WithWidth(min(m.width-4, maxFieldWidth)).ViewWithContext(ctx))
		for i := s.start; i < s.end; i++ {
			m.offsets[i] = row
			view := m.widgets[i].View()
			if badge := m.badge(i); badge != nil {
				view = components.HStack(m.widgets[i], badge).
					WithGap(1).
					WithCrossAlign(components.CrossCenter).
					ViewWithContext(ctx)
			}
			add(view)
			add("")
		}
	}
	return strings.Join(blocks, "\n")
}

// badge labels controls whose visual state differs from default, so the
// states section reads without colour.
func (m Model) badge(i int) *components.Badge {
	state := m.widgets[i].Input().Visual()
	if state == field.StateDefault {
		return nil
	}
	return components.StateBadge(state)
}

// syncViewport re-renders the content and scrolls the focused control
// fully into view.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.content())
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return
	}
	top := m.offsets[m.focus]
	bottom := top + lipgloss.Height(m.widgets[m.focus].View())
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m Model) context() components.RenderContext {
	return components.RenderContext{
		Theme:       m.theme,
		Constraints: components.Unconstrained(),
		ParentWidth: m.width,
	}
}
