package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/formkit/internal/field"
)

// Glyphs drawn by Field.
const (
	ClearGlyph   = "✕"
	LoadingGlyph = "…"
	SecretGlyph  = "•"
)

const defaultFieldWidth = 40

// Field renders the frame of one control around the engine's state.
type Field struct {
	BaseComponent
	input   *field.Input
	content string
	live    bool
	spinner string
	secret  bool
	suffix  string
	width   int
}

// NewField creates a frame for in. Without WithContent the stored value
// (or the placeholder) is drawn.
func NewField(in *field.Input) *Field {
	return &Field{BaseComponent: NewBaseComponent(), input: in}
}

// WithContent draws a live editor view instead of the stored value. The
// editor should be sized with ContentWidth; narrower views are padded.
func (f *Field) WithContent(content string) *Field {
	f.content = content
	f.live = true
	return f
}

// WithSpinner sets the frame drawn while the control is loading.
func (f *Field) WithSpinner(frame string) *Field {
	f.spinner = frame
	return f
}

// WithSecret masks the stored value.
func (f *Field) WithSecret(secret bool) *Field {
	f.secret = secret
	return f
}

// WithSuffix replaces the decoration suffix, e.g. to flip a toggle icon.
func (f *Field) WithSuffix(suffix string) *Field {
	f.suffix = suffix
	return f
}

// WithWidth sets the outer width of the frame.
func (f *Field) WithWidth(width int) *Field {
	f.width = width
	return f
}

// View renders the field with the light theme.
func (f *Field) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, input row, help, validation and count.
func (f *Field) ViewWithContext(ctx RenderContext) string {
	l := f.layout(ctx)
	attrs, deco := l.attrs, l.deco

	floatingInside := attrs.Variant == field.VariantFloating && !attrs.Focused && !attrs.HasValue
	var lines []string
	if deco.Label != "" && !floatingInside {
		label := LabelText(deco.Label)
		if attrs.Variant == field.VariantFloating {
			label = HelpText(deco.Label)
		}
		lines = append(lines, label.ViewWithContext(ctx))
	}

	lines = append(lines, l.frame.Render(f.row(ctx, l, floatingInside)))

	wrap := l.width
	if deco.HelpText != "" {
		lines = append(lines, HelpText(wordwrap.String(deco.HelpText, wrap)).ViewWithContext(ctx))
	}
	if msg := f.input.Message(); msg != "" {
		text := ErrorText(wordwrap.String(msg, wrap))
		if !attrs.Invalid {
			text = HelpText(wordwrap.String(msg, wrap))
		}
		lines = append(lines, text.ViewWithContext(ctx))
	}
	if count := f.input.CountLabel(); count != "" {
		lines = append(lines, HelpText(runewidth.FillLeft(count, l.width)).ViewWithContext(ctx))
	}
	if deco.FileUploadText != "" && !attrs.HasValue {
		lines = append(lines, HelpText(wordwrap.String(deco.FileUploadText, wrap)).ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ContentWidth is the number of cells left for the value once the frame,
// the prefix and the suffix are laid out.
func (f *Field) ContentWidth(ctx RenderContext) int {
	return f.layout(ctx).budget
}

type fieldLayout struct {
	attrs  field.Attributes
	deco   field.Decoration
	frame  lipgloss.Style
	width  int
	budget int
	prefix string
	suffix string
}

func (f *Field) layout(ctx RenderContext) fieldLayout {
	t := ctx.Theme
	l := fieldLayout{
		attrs: f.input.Attributes(t.Tokens),
		deco:  f.input.Options().Decoration,
		width: f.width,
	}
	if f.suffix != "" {
		l.deco.Suffix = f.suffix
	}
	if l.width <= 0 {
		l.width = ctx.Width(defaultFieldWidth)
	}

	l.frame = InputStyle(t, l.attrs.State, l.attrs.Variant)

	var lead []string
	if l.deco.Prefix != "" {
		lead = append(lead, l.deco.Prefix)
	}
	if l.deco.Icon != "" {
		lead = append(lead, l.deco.Icon)
	}
	var trail []string
	if l.attrs.ShowSpinner {
		frame := f.spinner
		if frame == "" {
			frame = LoadingGlyph
		}
		trail = append(trail, frame)
	}
	if l.attrs.ShowClear {
		trail = append(trail, ClearGlyph)
	}
	if l.deco.Suffix != "" {
		trail = append(trail, l.deco.Suffix)
	}
	l.prefix = strings.Join(lead, " ")
	l.suffix = strings.Join(trail, " ")

	l.budget = l.width - l.frame.GetHorizontalFrameSize()
	if l.prefix != "" {
		l.budget -= lipgloss.Width(l.prefix) + 1
	}
	if l.suffix != "" {
		l.budget -= lipgloss.Width(l.suffix) + 1
	}
	if l.budget < 1 {
		l.budget = 1
	}
	return l
}

func (f *Field) row(ctx RenderContext, l fieldLayout, floatingInside bool) string {
	t := ctx.Theme
	muted := TypographyStyle(t, TypographyVariantHelp)

	var content string
	switch {
	case f.live:
		content = lipgloss.PlaceHorizontal(l.budget, lipgloss.Left, f.content)
	case floatingInside && l.deco.Label != "":
		content = muted.Render(fit(l.deco.Label, l.budget))
	case l.attrs.HasValue:
		value := f.input.Value()
		if f.secret {
			value = strings.Repeat(SecretGlyph, field.Length(value))
		}
		content = fit(value, l.budget)
	case l.attrs.Placeholder != "":
		content = muted.Faint(true).Render(fit(l.attrs.Placeholder, l.budget))
	default:
		content = fit("", l.budget)
	}

	parts := make([]string, 0, 5)
	if l.prefix != "" {
		parts = append(parts, muted.Render(l.prefix), " ")
	}
	parts = append(parts, content)
	if l.suffix != "" {
		parts = append(parts, " ", muted.Render(l.suffix))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
