package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Header is a title line with an optional subtitle. The subtitle stays on
// one line: past the context width it is cut with an ellipsis, so the
// header height never changes.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	actions  []*Button
}

// NewHeader creates a header in the title typography.
func NewHeader(title string) *Header {
	h := &Header{BaseComponent: NewBaseComponent(), title: title}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// WithSubtitle sets the line under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithActions places buttons after the title.
func (h *Header) WithActions(actions ...*Button) *Header {
	h.actions = append(h.actions, actions...)
	return h
}

func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if len(h.actions) > 0 {
		row := make([]Renderable, 0, len(h.actions)+1)
		row = append(row, NewText(title))
		for _, a := range h.actions {
			row = append(row, a)
		}
		title = HStack(row...).WithGap(2).WithCrossAlign(CrossCenter).ViewWithContext(ctx)
	}
	if h.subtitle == "" {
		return title
	}

	subtitle := h.subtitle
	if width := ctx.Width(0); width > 0 {
		subtitle = truncate.StringWithTail(subtitle, uint(width), "…")
	}
	subtitle = TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}
