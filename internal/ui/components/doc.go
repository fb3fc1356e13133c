// Package components renders themed terminal widgets with lipgloss.
//
// A token theme (package theme) is resolved once into a render Theme by
// FromTokens and passed explicitly through RenderContext:
//
//	ctx := components.NewRenderContext(provider.Theme())
//	out := components.NewField(input).ViewWithContext(ctx)
//
// Style modifiers are StyleFunc values composed into strategies, and
// per-variant strategies live in the theme's VariantRegistry, so the same
// component renders differently under the light and dark themes without
// any global state.
//
// Field is the frame around one form control: label, prefix and icon, the
// editable content, clear and suffix affordances, help text, validation
// message and character count. Its frame colour follows the control's
// visual state and its shape follows the presentation variant.
package components
