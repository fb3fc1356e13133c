package field

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/formkit/internal/logger"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

type recorder struct {
	events []Event
}

func (r *recorder) record(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestInitialValueIsStringified(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint8(3), "3"},
		{3.5, "3.5"},
		{float32(0.25), "0.25"},
		{100.0, "100"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New(Options{InitialValue: tc.in}).Value(), "%v", tc.in)
	}
}

func TestCharacterLimitScenario(t *testing.T) {
	rec := &recorder{}
	in := New(Options{CharacterLimit: 5, OnChange: rec.record})

	assert.True(t, in.Edit("hello"))
	assert.Equal(t, "hello", in.Value())

	assert.False(t, in.Edit("hello!"))
	assert.Equal(t, "hello", in.Value())
	assert.Equal(t, []EventKind{EventChange}, rec.kinds())
	assert.Equal(t, "5/5", in.CountLabel())
}

func TestOnLimitFiresOnlyWhenConfigured(t *testing.T) {
	rec := &recorder{}
	in := New(Options{ID: "name", CharacterLimit: 2, OnLimit: rec.record})
	require.True(t, in.Edit("ab"))
	require.False(t, in.Edit("abc"))

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, EventLimit, ev.Kind)
	assert.Equal(t, "name", ev.FieldID)
	assert.Equal(t, "abc", ev.Raw)
	assert.Equal(t, "ab", ev.Value)
}

func TestFocusEditBlurScenario(t *testing.T) {
	rec := &recorder{}
	in := New(Options{
		Baseline:   StateDefault,
		OnValidate: func(string) string { return "always wrong" },
		OnChange:   rec.record,
		OnFocus:    rec.record,
		OnBlur:     rec.record,
	})

	require.True(t, in.Focus())
	assert.Equal(t, StateFocus, in.Visual())

	require.True(t, in.Edit("x"))
	assert.Equal(t, StateError, in.Visual())
	assert.Equal(t, "always wrong", in.Message())

	require.True(t, in.Blur())
	assert.Equal(t, StateDefault, in.Visual())
	assert.Equal(t, []EventKind{EventFocus, EventChange, EventBlur}, rec.kinds())
}

func TestChangeEventCarriesRawAndMaskedValue(t *testing.T) {
	rec := &recorder{}
	in := New(Options{InitialValue: "a", Mask: strings.ToUpper, OnChange: rec.record})
	require.True(t, in.Edit("ab"))

	require.Len(t, rec.events, 1)
	assert.Equal(t, "ab", rec.events[0].Raw)
	assert.Equal(t, "AB", rec.events[0].Value)
	assert.Equal(t, "a", rec.events[0].Previous)
}

func TestMaskIdempotentOnRepeat(t *testing.T) {
	rec := &recorder{}
	in := New(Options{Mask: strings.ToUpper, OnChange: rec.record})
	require.True(t, in.Edit("abc"))
	before := in.State()

	require.True(t, in.Edit(in.Value()))
	assert.Equal(t, before, in.State())
}

func TestGatedInputFiresNoCallbacks(t *testing.T) {
	for _, gated := range []VisualState{StateReadOnly, StateLoading} {
		rec := &recorder{}
		in := New(Options{
			InitialValue: "v",
			Baseline:     gated,
			Clearable:    true,
			OnValidate:   func(string) string { return "" },
			OnChange:     rec.record,
			OnFocus:      rec.record,
			OnBlur:       rec.record,
		})
		before := in.State()

		assert.False(t, in.Edit("other"))
		assert.False(t, in.Focus())
		assert.False(t, in.Blur())
		assert.False(t, in.Clear())
		assert.Equal(t, before, in.State())
		assert.Empty(t, rec.events)
	}
}

func TestClearRequiresAffordanceAndRefocuses(t *testing.T) {
	rec := &recorder{}
	in := New(Options{InitialValue: "abc", OnChange: rec.record, OnFocus: rec.record})
	assert.False(t, in.Clear())

	in = New(Options{InitialValue: "abc", Clearable: true, OnChange: rec.record, OnFocus: rec.record})
	require.True(t, in.Clear())
	assert.Empty(t, in.Value())
	assert.True(t, in.Focused())
	assert.Equal(t, []EventKind{EventFocus}, rec.kinds())
	assert.False(t, in.Clear())
}

func TestClearWhileFocusedFiresNoFocusEvent(t *testing.T) {
	rec := &recorder{}
	in := New(Options{
		Clearable:  true,
		OnFocus:    rec.record,
		OnValidate: failWhen("ab"),
	})
	require.True(t, in.Focus())
	require.True(t, in.Edit("ab"))
	require.Equal(t, StateError, in.Visual())

	require.True(t, in.Clear())
	assert.Empty(t, in.Value())
	assert.Equal(t, StateError, in.Visual())
	assert.Equal(t, []EventKind{EventFocus}, rec.kinds(), "only the explicit focus fired")
}

func TestValidationMessageShownUntilFirstValidatedEdit(t *testing.T) {
	in := New(Options{ValidationMessage: "taken", Baseline: StateError, OnValidate: func(string) string { return "" }})
	assert.Equal(t, "taken", in.Message())

	require.True(t, in.Edit("fresh"))
	assert.Empty(t, in.Message())
	assert.Equal(t, StateSuccess, in.Visual())

	in.Sync(StateError, "taken again")
	assert.Equal(t, "taken again", in.Message())
	assert.Equal(t, StateError, in.Visual())
}

func TestGeneratedIDs(t *testing.T) {
	a := New(Options{})
	b := New(Options{})
	assert.True(t, strings.HasPrefix(a.ID(), "field-"))
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "email", New(Options{ID: "email"}).ID())
}

func TestCountLabelWithoutLimit(t *testing.T) {
	in := New(Options{InitialValue: "abc"})
	_, _, ok := in.CharacterCount()
	assert.False(t, ok)
	assert.Empty(t, in.CountLabel())
}

func TestRejectedEditIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	in := New(Options{ID: "zip", CharacterLimit: 1, Logger: log})
	in.Edit("12")

	out := buf.String()
	assert.Contains(t, out, `"field_id":"zip"`)
	assert.Contains(t, out, `"reason":"character_limit"`)
}

func TestAttributes(t *testing.T) {
	in := New(Options{
		ID:        "email",
		Variant:   VariantFloating,
		Clearable: true,
		Decoration: Decoration{
			Placeholder: "you@example.com",
			HelpText:    "We never share it",
			Icon:        "@",
		},
		OnValidate: func(v string) string {
			if v == "bad" {
				return "invalid"
			}
			return ""
		},
	})

	a := in.Attributes(theme.Light())
	assert.Empty(t, a.Placeholder, "floating label replaces the placeholder")
	assert.Equal(t, "email-help", a.DescribedBy)
	assert.True(t, a.HasPrefix)
	assert.False(t, a.HasSuffix)
	assert.False(t, a.Dark)
	assert.True(t, a.Interactive)

	require.True(t, in.Edit("bad"))
	a = in.Attributes(theme.Dark())
	assert.True(t, a.Invalid)
	assert.True(t, a.ShowClear)
	assert.True(t, a.HasSuffix)
	assert.True(t, a.Dark)
	assert.Equal(t, "email-help email-validation", a.DescribedBy)
	assert.Equal(t, []string{"input", "floating", "error", "has-value", "has-prefix", "has-suffix", "dark-mode"}, a.Classes())
}

func TestAttributesPerState(t *testing.T) {
	cases := []struct {
		state       VisualState
		disabled    bool
		readOnly    bool
		invalid     bool
		spinner     bool
		interactive bool
	}{
		{StateDefault, false, false, false, false, true},
		{StateDisabled, true, false, false, false, true},
		{StateLoading, true, false, false, true, false},
		{StateReadOnly, false, true, false, false, false},
		{StateError, false, false, true, false, true},
	}
	for _, tc := range cases {
		a := Derive(NewState("", tc.state, ""), "f", VariantNormal, Decoration{Placeholder: "p"}, false, theme.Light())
		assert.Equal(t, tc.disabled, a.Disabled, tc.state.String())
		assert.Equal(t, tc.readOnly, a.ReadOnly, tc.state.String())
		assert.Equal(t, tc.invalid, a.Invalid, tc.state.String())
		assert.Equal(t, tc.spinner, a.ShowSpinner, tc.state.String())
		assert.Equal(t, tc.interactive, a.Interactive, tc.state.String())
		assert.Equal(t, "p", a.Placeholder)
	}
}
