package components

// Text renders a string through its style modifiers.
type Text struct {
	BaseComponent
	content string
}

// NewText creates unstyled text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// LabelText creates a control label.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}

// HelpText creates the secondary line under a control.
func HelpText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantHelp))
}

// ErrorText creates body text in the danger colour.
func ErrorText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody), Foreground(PaletteDanger))
}

// WithAppliers replaces the style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}
