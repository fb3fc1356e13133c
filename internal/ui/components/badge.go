package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/field"
)

// BadgeVariant selects the fill colour of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantError
	BadgeVariantDisabled
)

// Badge is a short filled tag shown beside a control.
type Badge struct {
	BaseComponent
	label   string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(label string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), label: label}
}

// StateBadge names a visual state in that state's colour. Focus and hover
// share the primary fill; disabled and read-only share the muted one.
func StateBadge(state field.VisualState) *Badge {
	b := NewBadge(state.String())
	switch state {
	case field.StateFocus, field.StateHover:
		b.variant = BadgeVariantPrimary
	case field.StateSuccess:
		b.variant = BadgeVariantSuccess
	case field.StateError:
		b.variant = BadgeVariantError
	case field.StateDisabled, field.StateReadOnly:
		b.variant = BadgeVariantDisabled
	}
	return b
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Badge) computeStyle(th Theme) lipgloss.Style {
	style := b.ComputeStyle(th)
	if strategy := th.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, th)
	}
	return style
}
