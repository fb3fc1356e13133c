package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the fill colour of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
)

// Button is a labelled action with an optional key hint. It only renders;
// the hosting program owns key handling.
type Button struct {
	BaseComponent
	label    string
	hint     string
	variant  ButtonVariant
	disabled bool
	active   bool
}

// PrimaryButton creates a button filled with the primary colour.
func PrimaryButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label}
}

// SecondaryButton creates a button filled with the secondary colour.
func SecondaryButton(label string) *Button {
	b := PrimaryButton(label)
	b.variant = ButtonVariantSecondary
	return b
}

// WithKey shows the binding's help key after the label. A disabled binding
// disables the button.
func (b *Button) WithKey(binding key.Binding) *Button {
	b.hint = binding.Help().Key
	if !binding.Enabled() {
		b.disabled = true
	}
	return b
}

// WithDisabled renders the button in the disabled colours.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive underlines the label.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.computeStyle(ctx.Theme).Render(b.label)
	if b.hint == "" {
		return label
	}
	hint := TypographyStyle(ctx.Theme, TypographyVariantHelp).Render(b.hint)
	return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", hint)
}

func (b *Button) computeStyle(th Theme) lipgloss.Style {
	style := b.ComputeStyle(th)
	if strategy := th.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, th)
	}
	switch {
	case b.disabled:
		style = style.Background(th.Palette.Disabled.Base).Foreground(th.Palette.Disabled.OnBase).Bold(false)
	case b.active:
		style = style.Underline(true)
	}
	return style
}
