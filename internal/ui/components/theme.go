package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the spacing scale in terminal cells.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantLabel
	TypographyVariantHelp
	TypographyVariantCode
	TypographyVariantEmphasis
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ColourSet is a semantic colour group: Base is the fill, OnBase the text
// drawn over it, Muted a quieter accent and Contrast an accent that stands
// out against Base.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Danger    ColourSet
	Disabled  ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// InputStyles holds one frame style per visual state.
type InputStyles struct {
	states map[field.VisualState]lipgloss.Style
}

// For returns the frame style of state; unknown states use default.
func (s InputStyles) For(state field.VisualState) lipgloss.Style {
	if style, ok := s.states[state]; ok {
		return style
	}
	return s.states[field.StateDefault]
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[any]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is the render-time form of a token theme: colours resolved to
// lipgloss colours and lengths resolved to cells. Build one per token theme
// with FromTokens and rebuild it when the provider toggles.
type Theme struct {
	Tokens     theme.Theme
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// FromTokens resolves t into a render theme.
func FromTokens(t theme.Theme) Theme {
	c := t.Colors
	palette := Palette{
		Primary: ColourSet{
			Base:     lipgloss.Color(c.Primary),
			OnBase:   lipgloss.Color(c.Background),
			Muted:    lipgloss.Color(c.Secondary),
			Contrast: lipgloss.Color(c.Text),
		},
		Secondary: ColourSet{
			Base:     lipgloss.Color(c.Secondary),
			OnBase:   lipgloss.Color(c.Background),
			Muted:    lipgloss.Color(c.Disabled),
			Contrast: lipgloss.Color(c.Primary),
		},
		Surface: ColourSet{
			Base:     lipgloss.Color(c.Background),
			OnBase:   lipgloss.Color(c.Text),
			Muted:    lipgloss.Color(c.Disabled),
			Contrast: lipgloss.Color(c.Primary),
		},
		Success: ColourSet{
			Base:     lipgloss.Color(c.Success),
			OnBase:   lipgloss.Color(c.Background),
			Muted:    lipgloss.Color(c.Secondary),
			Contrast: lipgloss.Color(c.Text),
		},
		Danger: ColourSet{
			Base:     lipgloss.Color(c.Error),
			OnBase:   lipgloss.Color(c.Background),
			Muted:    lipgloss.Color(c.Secondary),
			Contrast: lipgloss.Color(c.Text),
		},
		Disabled: ColourSet{
			Base:     lipgloss.Color(c.Disabled),
			OnBase:   lipgloss.Color(c.Secondary),
			Muted:    lipgloss.Color(c.Secondary),
			Contrast: lipgloss.Color(c.Text),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	spacing := spacingFromScale(t.Spacing)

	rt := Theme{
		Tokens:     t,
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: spacing, Margin: spacing},
		Typography: typographyFor(palette),
		Input:      inputStylesFor(palette),
		Variants:   NewVariantRegistry(),
	}
	registerFieldVariants(rt.Variants)
	registerBadgeVariants(rt.Variants)
	registerButtonVariants(rt.Variants)
	return rt
}

// DefaultTheme returns the light render theme.
func DefaultTheme() Theme {
	return FromTokens(theme.Light())
}

// DarkTheme returns the dark render theme.
func DarkTheme() Theme {
	return FromTokens(theme.Dark())
}

func spacingFromScale(s theme.Scale) spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: theme.Cells(s.ExtraSmall),
		SpacingSizeSmall:      theme.Cells(s.Small),
		SpacingSizeMedium:     theme.Cells(s.Medium),
		SpacingSizeLarge:      theme.Cells(s.Large),
		SpacingSizeExtraLarge: theme.Cells(s.ExtraLarge),
	}
}

func typographyFor(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Base).Faint(true),
		Body:     base,
		Label:    base.Bold(true),
		Help:     base.Foreground(p.Secondary.Base),
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}

func inputStylesFor(p Palette) InputStyles {
	frame := lipgloss.NewStyle().
		Foreground(p.Surface.OnBase).
		BorderForeground(p.Secondary.Base).
		Padding(0, 1)

	return InputStyles{states: map[field.VisualState]lipgloss.Style{
		field.StateDefault:  frame,
		field.StateHover:    frame.BorderForeground(p.Primary.Muted),
		field.StateFocus:    frame.BorderForeground(p.Primary.Base),
		field.StateDisabled: frame.Foreground(p.Disabled.OnBase).Background(p.Disabled.Base).BorderForeground(p.Disabled.Base),
		field.StateReadOnly: frame.BorderForeground(p.Disabled.Base).Italic(true),
		field.StateError:    frame.BorderForeground(p.Danger.Base),
		field.StateSuccess:  frame.BorderForeground(p.Success.Base),
		field.StateLoading:  frame.Foreground(p.Secondary.Base).BorderForeground(p.Secondary.Base).Faint(true),
	}}
}

// registerFieldVariants populates the frame shape of each presentation
// variant. State colours are applied first; variants only pick the shape.
func registerFieldVariants(registry *VariantRegistry) {
	registry.Register(field.VariantNormal, NewCompositeStrategy(Border(BorderVariantNormal)))
	registry.Register(field.VariantFloating, NewCompositeStrategy(Border(BorderVariantNormal)))
	registry.Register(field.VariantOutlined, NewCompositeStrategy(Border(BorderVariantThick)))
	registry.Register(field.VariantRounded, NewCompositeStrategy(Border(BorderVariantRounded)))
	registry.Register(field.VariantUnderlined, NewCompositeStrategy(
		func(base lipgloss.Style, th Theme) lipgloss.Style {
			return base.Border(th.Borders.Normal, false, false, true, false)
		},
	))
	registry.Register(field.VariantFilled, NewCompositeStrategy(
		func(base lipgloss.Style, th Theme) lipgloss.Style {
			return base.Border(th.Borders.None).Background(th.Palette.Surface.Muted)
		},
	))
}

// registerBadgeVariants populates badge variant strategies.
func registerBadgeVariants(registry *VariantRegistry) {
	for variant, slot := range map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault:  PaletteSecondary,
		BadgeVariantPrimary:  PalettePrimary,
		BadgeVariantSuccess:  PaletteSuccess,
		BadgeVariantError:    PaletteDanger,
		BadgeVariantDisabled: PaletteDisabled,
	} {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}
}

// registerButtonVariants populates button variant strategies.
func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeMedium),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
		PaddingX(SpacingSizeMedium),
	))
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantHelp:
		return typo.Help
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

// InputStyle returns the frame style for a control in state s drawn with
// variant v.
func InputStyle(theme Theme, s field.VisualState, v field.Variant) lipgloss.Style {
	style := theme.Input.For(s)
	if strategy := theme.Variants.Get(v); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return style
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteDisabled  PaletteSlot = func(p Palette) ColourSet { return p.Disabled }
)

// Background applies a semantic background colour and the matching
// foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
