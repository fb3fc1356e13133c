package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable renders against a theme and a width budget.
// Stacks pass their context down to children implementing it.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// StyleFunc derives a style from the theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy is a registered look, such as one field variant.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies its funcs in order.
type CompositeStrategy []StyleFunc

func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy chains funcs into one strategy.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy(funcs)
}

// BaseComponent holds the theme-relative style modifiers of a component.
// Nothing is resolved until render time, so the same component renders
// correctly under either theme.
type BaseComponent struct {
	appliers CompositeStrategy
}

// NewBaseComponent returns an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{}
}

// ComputeStyle resolves the modifiers against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.appliers.Apply(lipgloss.NewStyle(), theme)
}

// SetAppliers replaces the modifiers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = appliers
}

// Constraints bounds the width a component may render at. A negative
// maximum means unlimited.
type Constraints struct {
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithMaxWidth returns constraints capped at maxWidth.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// RenderContext provides layout information and theme to components during
// rendering. The theme travels with the context; nothing reads a global.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the light theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// NewRenderContext returns an unconstrained context rendering with t.
func NewRenderContext(t theme.Theme) RenderContext {
	return RenderContext{
		Theme:       FromTokens(t),
		Constraints: Unconstrained(),
	}
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// Width is the width budget of the context, or fallback when unconstrained.
func (r RenderContext) Width(fallback int) int {
	switch {
	case r.Constraints.MaxWidth > 0:
		return r.Constraints.MaxWidth
	case r.ParentWidth > 0:
		return r.ParentWidth
	default:
		return fallback
	}
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
