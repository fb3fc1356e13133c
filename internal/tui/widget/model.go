// Package widget binds one field.Input to a bubbles edit buffer so the
// control can be driven from a bubbletea program.
package widget

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
	"github.com/alexisbeaulieu97/formkit/internal/ui/components"
)

const (
	defaultWidth    = 40
	defaultRows     = 3
	suggestionLimit = 5
)

// Options configures a widget. Field is layered over the kind preset with
// kinds.Apply, so explicit field options win.
type Options struct {
	Kind     kinds.Kind
	Settings kinds.Settings
	Field    field.Options
	Theme    theme.Theme
	// Width is the outer width of the frame in cells.
	Width int
	// Rows is the height of multi-line kinds.
	Rows int
	// Stat resolves paths for the file kind; os.Stat when nil.
	Stat kinds.StatFunc
}

// Model is the bubbletea model of one control. The engine state lives in
// the shared *field.Input; the bubbles buffers only mirror it.
type Model struct {
	input    *field.Input
	preset   kinds.Preset
	settings kinds.Settings
	stat     kinds.StatFunc

	text    textinput.Model
	area    textarea.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	theme components.Theme
	width int

	revealed    bool
	suggestions []string
	selected    int
}

// New builds the control described by opts.
func New(opts Options) Model {
	preset := kinds.PresetFor(opts.Kind)
	fieldOpts := kinds.Apply(preset.Kind, opts.Settings, opts.Field)
	if preset.Kind == kinds.File && opts.Field.OnValidate == nil && opts.Stat != nil {
		fieldOpts.OnValidate = kinds.FileValidator(opts.Settings.Multiple, opts.Stat)
	}

	tokens := opts.Theme
	if tokens.Name == "" {
		tokens = theme.Light()
	}

	m := Model{
		input:    field.New(fieldOpts),
		preset:   preset,
		settings: opts.Settings,
		stat:     opts.Stat,
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		theme:    components.FromTokens(tokens),
		width:    opts.Width,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}

	placeholder := ""
	if fieldOpts.Variant != field.VariantFloating {
		placeholder = fieldOpts.Decoration.Placeholder
	}

	m.text = textinput.New()
	m.text.Prompt = ""
	m.text.Placeholder = placeholder
	m.text.SetValue(m.input.Value())

	rows := opts.Rows
	if rows <= 0 {
		rows = defaultRows
	}
	m.area = textarea.New()
	m.area.Prompt = ""
	m.area.ShowLineNumbers = false
	m.area.Placeholder = placeholder
	m.area.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.area.SetHeight(rows)
	m.area.SetValue(m.input.Value())

	m.keys.Clear.SetEnabled(fieldOpts.Clearable)
	m.keys.Reveal.SetEnabled(preset.Secret && !opts.Settings.HidePasswordToggle)
	suggest := preset.Kind == kinds.Search && len(opts.Settings.Suggestions) > 0
	m.keys.NextSuggestion.SetEnabled(suggest)
	m.keys.PrevSuggestion.SetEnabled(suggest)
	m.keys.AcceptSuggestion.SetEnabled(suggest)

	m.applyTheme()
	m.applyEcho()
	m.resize()
	return m
}

// Init starts the spinner when the control is created loading.
func (m Model) Init() tea.Cmd {
	if m.loading() {
		return m.spinner.Tick
	}
	return nil
}

// Input exposes the engine instance.
func (m Model) Input() *field.Input { return m.input }

// Kind is the preset kind of the control.
func (m Model) Kind() kinds.Kind { return m.preset.Kind }

// Value is the stored value.
func (m Model) Value() string { return m.input.Value() }

// Focused reports whether the control holds focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Revealed reports whether a secret value is shown in clear.
func (m Model) Revealed() bool { return m.revealed }

// Suggestions are the current search matches, best first.
func (m Model) Suggestions() []string { return m.suggestions }

// Selected is the index of the highlighted suggestion.
func (m Model) Selected() int { return m.selected }

// Keys returns the key bindings with their enabled flags.
func (m Model) Keys() KeyMap { return m.keys }

// Multiline reports whether the control edits with a textarea.
func (m Model) Multiline() bool { return m.preset.Multiline }

// Disabled reports whether the control refuses focus and keys. The engine
// gates read-only and loading; disabled is enforced here.
func (m Model) Disabled() bool {
	return m.input.Visual() == field.StateDisabled
}

func (m Model) loading() bool {
	return m.input.Visual() == field.StateLoading
}

// Focus moves focus into the control and its edit buffer.
func (m *Model) Focus() tea.Cmd {
	if m.Disabled() || m.input.Focused() {
		return nil
	}
	if !m.input.Focus() {
		return nil
	}
	m.refreshSuggestions()
	m.resize()
	if m.preset.Multiline {
		return m.area.Focus()
	}
	return m.text.Focus()
}

// Blur takes focus away. The engine resets the visual state to the
// caller's baseline.
func (m *Model) Blur() {
	if m.input.Focused() {
		m.input.Blur()
	}
	m.text.Blur()
	m.area.Blur()
	m.suggestions = nil
	m.selected = 0
	m.resize()
}

// SetState pushes a new caller baseline and message. Moving to a state that
// refuses interaction drops focus first. The returned command starts the
// spinner when the control becomes loading.
func (m *Model) SetState(baseline field.VisualState, message string) tea.Cmd {
	wasLoading := m.loading()
	if m.input.Focused() && (!baseline.Interactive() || baseline == field.StateDisabled) {
		m.Blur()
	}
	m.input.Sync(baseline, message)
	m.resize()
	if m.loading() && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// SetTheme re-resolves the render theme after a toggle.
func (m *Model) SetTheme(t theme.Theme) {
	m.theme = components.FromTokens(t)
	m.applyTheme()
	m.resize()
}

// SetWidth sets the outer width of the frame.
func (m *Model) SetWidth(width int) {
	if width > 0 {
		m.width = width
		m.resize()
	}
}

// Width is the outer width of the frame.
func (m Model) Width() int { return m.width }

// SetValue writes v through the engine as if typed.
func (m *Model) SetValue(v string) bool {
	ok := m.commit(v)
	m.syncBuffer()
	return ok
}

func (m *Model) commit(v string) bool {
	ok := m.input.Edit(v)
	m.refreshSuggestions()
	m.resize()
	return ok
}

// syncBuffer rewrites the edit buffer when the engine stored something
// else, i.e. the edit was masked or rejected.
func (m *Model) syncBuffer() {
	v := m.input.Value()
	if m.preset.Multiline {
		if m.area.Value() != v {
			m.area.SetValue(v)
		}
		return
	}
	if m.text.Value() != v {
		m.text.SetValue(v)
		m.text.CursorEnd()
	}
}

func (m Model) buffer() string {
	if m.preset.Multiline {
		return m.area.Value()
	}
	return m.text.Value()
}

func (m *Model) refreshSuggestions() {
	if !m.keys.AcceptSuggestion.Enabled() || !m.input.Focused() {
		m.suggestions = nil
		m.selected = 0
		return
	}
	m.suggestions = kinds.Suggest(m.input.Value(), m.settings.Suggestions, suggestionLimit)
	if len(m.suggestions) == 1 && m.suggestions[0] == m.input.Value() {
		m.suggestions = nil
	}
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
}

func (m *Model) applyEcho() {
	if m.preset.Secret && !m.revealed {
		m.text.EchoMode = textinput.EchoPassword
		m.text.EchoCharacter = []rune(components.SecretGlyph)[0]
		return
	}
	m.text.EchoMode = textinput.EchoNormal
}

func (m *Model) applyTheme() {
	t := m.theme
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.Palette.Primary.Base)
	m.text.PlaceholderStyle = components.TypographyStyle(t, components.TypographyVariantHelp).Faint(true)
	m.text.TextStyle = components.TypographyStyle(t, components.TypographyVariantBody)
	m.area.FocusedStyle.Text = components.TypographyStyle(t, components.TypographyVariantBody)
	m.area.BlurredStyle.Text = components.TypographyStyle(t, components.TypographyVariantBody)
	m.area.FocusedStyle.Placeholder = m.text.PlaceholderStyle
	m.area.BlurredStyle.Placeholder = m.text.PlaceholderStyle
	m.help.Styles.ShortKey = components.TypographyStyle(t, components.TypographyVariantEmphasis)
	m.help.Styles.ShortDesc = components.TypographyStyle(t, components.TypographyVariantHelp)
	m.help.Styles.ShortSeparator = components.TypographyStyle(t, components.TypographyVariantHelp)
}

// resize fits the edit buffers to the cells the frame leaves for content.
// The budget moves as the clear glyph and spinner come and go.
func (m *Model) resize() {
	budget := m.frame().ContentWidth(m.context())
	// textinput draws the cursor one cell past the text.
	m.text.Width = max(budget-1, 1)
	m.text.SetCursor(m.text.Position())
	m.area.SetWidth(budget)
}

func (m Model) context() components.RenderContext {
	return components.RenderContext{
		Theme:       m.theme,
		Constraints: components.Unconstrained(),
	}
}
