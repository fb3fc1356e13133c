package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider is a horizontal rule in the secondary colour, optionally opened
// by a label: "── Account ─────".
type Divider struct {
	BaseComponent
	char  string
	label string
	width int
}

// NewDivider creates a solid divider. A zero width fills the context.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─"}
	d.SetAppliers(Foreground(PaletteSecondary))
	return d
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	d := NewDivider()
	d.char = "·"
	return d
}

// WithLabel opens the rule with label in the label typography.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithWidth fixes the rule width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width(40)
	}
	rule := d.ComputeStyle(ctx.Theme)
	if d.label == "" {
		return rule.Render(strings.Repeat(d.char, width))
	}

	lead := rule.Render(strings.Repeat(d.char, 2) + " ")
	label := TypographyStyle(ctx.Theme, TypographyVariantLabel).Render(d.label)
	rest := width - lipgloss.Width(lead) - lipgloss.Width(label) - 1
	if rest <= 0 {
		return lead + label
	}
	return lead + label + rule.Render(" "+strings.Repeat(d.char, rest))
}
