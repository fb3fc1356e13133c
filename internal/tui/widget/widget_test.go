package widget

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func focused(t *testing.T, opts Options) Model {
	t.Helper()
	m := New(opts)
	m.Focus()
	require.True(t, m.Focused())
	return m
}

func TestTypingCommitsThroughEngine(t *testing.T) {
	var changes []string
	m := focused(t, Options{Field: field.Options{OnChange: func(ev field.Event) {
		changes = append(changes, ev.Value)
	}}})

	m = typeText(m, "hi")

	assert.Equal(t, "hi", m.Value())
	assert.Equal(t, "hi", m.text.Value())
	assert.Equal(t, []string{"h", "hi"}, changes)
}

func TestCharacterLimitRewritesBuffer(t *testing.T) {
	limits := 0
	m := focused(t, Options{Field: field.Options{
		CharacterLimit: 3,
		OnLimit:        func(field.Event) { limits++ },
	}})

	m = typeText(m, "abcd")

	assert.Equal(t, "abc", m.Value())
	assert.Equal(t, "abc", m.text.Value(), "rejected edits are removed from the buffer")
	assert.Equal(t, 1, limits)
	assert.Contains(t, m.View(), "3/3")
}

func TestMaskRewritesBuffer(t *testing.T) {
	m := focused(t, Options{Field: field.Options{Mask: validate.UpperCase}})

	m = typeText(m, "ab")

	assert.Equal(t, "AB", m.Value())
	assert.Equal(t, "AB", m.text.Value())
}

func TestKeysIgnoredWithoutFocus(t *testing.T) {
	m := New(Options{})

	m, _ = m.Update(runes("x"))

	assert.Empty(t, m.Value())
}

func TestDisabledRefusesFocus(t *testing.T) {
	focusCalls := 0
	m := New(Options{Field: field.Options{
		Baseline: field.StateDisabled,
		OnFocus:  func(field.Event) { focusCalls++ },
	}})

	assert.Nil(t, m.Focus())
	assert.False(t, m.Focused())
	assert.True(t, m.Disabled())
	assert.Zero(t, focusCalls)

	m, _ = m.Update(runes("x"))
	assert.Empty(t, m.Value())
}

func TestReadOnlyAndLoadingRefuseFocus(t *testing.T) {
	for _, state := range []field.VisualState{field.StateReadOnly, field.StateLoading} {
		t.Run(state.String(), func(t *testing.T) {
			m := New(Options{Field: field.Options{Baseline: state, InitialValue: "kept"}})
			m.Focus()
			assert.False(t, m.Focused())

			m, _ = m.Update(runes("x"))
			assert.Equal(t, "kept", m.Value())
		})
	}
}

func TestClearKey(t *testing.T) {
	var changes int
	m := focused(t, Options{Field: field.Options{
		InitialValue: "abc",
		Clearable:    true,
		OnChange:     func(field.Event) { changes++ },
	}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Empty(t, m.Value())
	assert.Empty(t, m.text.Value())
	assert.True(t, m.Focused())
	assert.Zero(t, changes, "clearing does not fire a change event")
}

func TestClearKeyDisabledWithoutClearable(t *testing.T) {
	m := focused(t, Options{Field: field.Options{InitialValue: "abc"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	assert.Equal(t, "abc", m.Value())
	assert.False(t, m.Keys().Clear.Enabled())
}

func TestPasswordReveal(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Password, Field: field.Options{InitialValue: "hunter2"}})
	assert.Equal(t, textinput.EchoPassword, m.text.EchoMode)

	m.Blur()
	assert.NotContains(t, m.View(), "hunter2")
	assert.Contains(t, m.View(), kinds.IconHidden)

	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.Revealed())
	assert.Equal(t, textinput.EchoNormal, m.text.EchoMode)

	m.Blur()
	view := m.View()
	assert.Contains(t, view, "hunter2")
	assert.Contains(t, view, kinds.IconShown)
}

func TestPasswordToggleCanBeHidden(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Password, Settings: kinds.Settings{HidePasswordToggle: true}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.False(t, m.Revealed())
	assert.NotContains(t, m.View(), kinds.IconHidden)
}

func TestNumberBounds(t *testing.T) {
	m := New(Options{Kind: kinds.Number, Settings: kinds.Settings{Min: validate.Bound(1), Max: validate.Bound(10)}})
	m.Focus()

	m.SetValue("42")
	assert.Equal(t, "Value must be at most 10", m.Input().Message())
	assert.Equal(t, field.StateError, m.Input().Visual())
	assert.Contains(t, m.View(), "Value must be at most 10")

	m.SetValue("5")
	assert.Empty(t, m.Input().Message())
	assert.Equal(t, field.StateSuccess, m.Input().Visual())
}

func TestBlurRestoresBaseline(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Email})

	m = typeText(m, "nope")
	assert.Equal(t, field.StateError, m.Input().Visual())

	m.Blur()
	assert.Equal(t, field.StateDefault, m.Input().Visual())
	assert.Equal(t, validate.EmailMessage, m.Input().Message(), "the message stays on display")
}

func TestSearchSuggestions(t *testing.T) {
	m := focused(t, Options{
		Kind:     kinds.Search,
		Settings: kinds.Settings{Suggestions: []string{"apple", "apricot", "banana"}},
	})

	m = typeText(m, "ap")
	require.Len(t, m.Suggestions(), 2)
	assert.ElementsMatch(t, []string{"apple", "apricot"}, m.Suggestions())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())
	want := m.Suggestions()[1]

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, want, m.Value())
	assert.Equal(t, want, m.text.Value())
	assert.Empty(t, m.Suggestions())
}

func TestSearchWithoutCorpus(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Search})

	m = typeText(m, "ap")

	assert.Empty(t, m.Suggestions())
	assert.False(t, m.Keys().AcceptSuggestion.Enabled())
	assert.Contains(t, m.View(), kinds.IconSearch)
}

func TestTextareaKeepsNewlines(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Textarea, Rows: 4})
	require.True(t, m.Multiline())

	m = typeText(m, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "b")

	assert.Equal(t, "a\nb", m.Value())
}

func TestTextareaHonoursLimit(t *testing.T) {
	m := focused(t, Options{Kind: kinds.Textarea, Field: field.Options{CharacterLimit: 2}})

	m = typeText(m, "abc")

	assert.Equal(t, "ab", m.Value())
	assert.Equal(t, "ab", m.area.Value())
}

func TestLoadingStartsAndStopsSpinner(t *testing.T) {
	m := focused(t, Options{})

	cmd := m.SetState(field.StateLoading, "")
	assert.NotNil(t, cmd, "becoming loading starts the spinner")
	assert.False(t, m.Focused(), "loading drops focus")

	_, cmd = m.Update(spinner.TickMsg{ID: m.spinner.ID()})
	assert.NotNil(t, cmd)

	_, cmd = m.Update(spinner.TickMsg{ID: m.spinner.ID() + 1000})
	assert.Nil(t, cmd, "ticks of other spinners are ignored")

	m.SetState(field.StateDefault, "")
	_, cmd = m.Update(spinner.TickMsg{ID: m.spinner.ID()})
	assert.Nil(t, cmd, "ticks stop once loading ends")
}

func TestInitTicksWhenLoading(t *testing.T) {
	assert.NotNil(t, New(Options{Field: field.Options{Baseline: field.StateLoading}}).Init())
	assert.Nil(t, New(Options{}).Init())
}

func TestFileDescription(t *testing.T) {
	fsys := fstest.MapFS{"report.pdf": {Data: make([]byte, 2048)}}
	stat := func(p string) (fs.FileInfo, error) { return fs.Stat(fsys, p) }

	m := New(Options{Kind: kinds.File, Stat: stat})
	assert.Contains(t, m.View(), "Type a path")

	m.Focus()
	m.SetValue("report.pdf")
	m.Blur()
	assert.Empty(t, m.Input().Message())
	assert.Contains(t, m.View(), "report.pdf (2.0 KiB)")

	m.Focus()
	m.SetValue("missing.pdf")
	assert.Equal(t, "File not found: missing.pdf", m.Input().Message())
}

func TestHelpLineWhileFocused(t *testing.T) {
	m := New(Options{Field: field.Options{Clearable: true}})
	assert.NotContains(t, m.View(), "clear")

	m.Focus()
	assert.Contains(t, m.View(), "clear")
}

func TestSetThemeAndWidth(t *testing.T) {
	m := New(Options{Width: 30})
	assert.Equal(t, 30, m.Width())

	m.SetTheme(theme.Dark())
	assert.Equal(t, theme.NameDark, m.theme.Tokens.Name)

	m.SetWidth(50)
	assert.Equal(t, 50, m.Width())
	assert.Equal(t, 45, m.text.Width)

	m.SetWidth(0)
	assert.Equal(t, 50, m.Width())
}
