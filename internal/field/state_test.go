package field

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failWhen(bad string) ValidateFunc {
	return func(v string) string {
		if v == bad {
			return "bad value"
		}
		return ""
	}
}

func TestParseVisualState(t *testing.T) {
	for _, s := range VisualStates() {
		parsed, err := ParseVisualState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	s, err := ParseVisualState("")
	require.NoError(t, err)
	assert.Equal(t, StateDefault, s)

	_, err = ParseVisualState("pressed")
	require.Error(t, err)
	assert.Equal(t, "VisualState(42)", VisualState(42).String())
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseVariant("ghost")
	require.Error(t, err)
	assert.Len(t, Variants(), 6)
}

func TestNewStateFallsBackToDefaultBaseline(t *testing.T) {
	s := NewState("x", VisualState(99), "")
	assert.Equal(t, StateDefault, s.Visual)
	assert.Equal(t, StateDefault, s.Baseline)
}

func TestEditMaskRunsBeforeLimit(t *testing.T) {
	rules := Rules{CharacterLimit: 3, Mask: func(s string) string { return strings.ReplaceAll(s, "-", "") }}

	next, outcome := State{}.Edit(rules, "1-2-3")
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "123", next.Value)

	_, outcome = next.Edit(rules, "1234")
	assert.Equal(t, OverLimit, outcome)
}

func TestEditWithoutValidatorKeepsVisualState(t *testing.T) {
	s := NewState("", StateHover, "")
	next, outcome := s.Edit(Rules{}, "abc")
	require.Equal(t, Applied, outcome)
	assert.Equal(t, StateHover, next.Visual)
	assert.Equal(t, "abc", next.Value)
}

func TestLimitInvariantHoldsForRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rules := Rules{CharacterLimit: 8}
	alphabet := []rune("ab😀é ")

	s := State{}
	for i := 0; i < 500; i++ {
		n := rng.Intn(14)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		next, outcome := s.Edit(rules, b.String())
		if outcome == OverLimit {
			assert.Equal(t, s, next)
		}
		s = next
		require.LessOrEqual(t, Length(s.Value), rules.CharacterLimit)
	}
}

func TestValidationConsistency(t *testing.T) {
	validate := failWhen("nope")
	rules := Rules{Validate: validate}

	for _, raw := range []string{"", "nope", "yes", "nope "} {
		next, outcome := NewState("", StateDefault, "").Edit(rules, raw)
		require.Equal(t, Applied, outcome)
		if msg := validate(raw); msg == "" {
			assert.Equal(t, StateSuccess, next.Visual, raw)
			assert.Empty(t, next.Message)
		} else {
			assert.Equal(t, StateError, next.Visual, raw)
			assert.Equal(t, msg, next.Message)
		}
	}
}

func TestBlurRestoresBaseline(t *testing.T) {
	for _, baseline := range []VisualState{StateDefault, StateHover, StateError, StateSuccess, StateDisabled} {
		s := NewState("", baseline, "")
		s, _ = s.Focus()
		s, _ = s.Edit(Rules{Validate: failWhen("x")}, "x")
		require.Equal(t, StateError, s.Visual)
		s, outcome := s.Blur()
		require.Equal(t, Applied, outcome)
		assert.Equal(t, baseline, s.Visual)
		assert.False(t, s.Focused)
	}
}

func TestGatedStatesIgnoreInteraction(t *testing.T) {
	for _, gated := range []VisualState{StateReadOnly, StateLoading} {
		s := NewState("keep", gated, "")

		next, outcome := s.Edit(Rules{Validate: failWhen("x")}, "x")
		assert.Equal(t, Gated, outcome)
		assert.Equal(t, s, next)

		next, outcome = s.Focus()
		assert.Equal(t, Gated, outcome)
		assert.Equal(t, s, next)

		next, outcome = s.Blur()
		assert.Equal(t, Gated, outcome)
		assert.Equal(t, s, next)

		next, outcome = s.Clear()
		assert.Equal(t, Gated, outcome)
		assert.Equal(t, s, next)
	}
}

func TestClear(t *testing.T) {
	s := NewState("abc", StateDefault, "")
	next, outcome := s.Clear()
	require.Equal(t, Applied, outcome)
	assert.Empty(t, next.Value)
	assert.True(t, next.Focused)
	assert.Equal(t, StateFocus, next.Visual)

	_, outcome = next.Clear()
	assert.Equal(t, Unavailable, outcome)

	_, outcome = NewState("abc", StateDisabled, "").Clear()
	assert.Equal(t, Gated, outcome)
}

func TestClearWhileFocusedKeepsVisualState(t *testing.T) {
	s, _ := NewState("", StateDefault, "").Focus()
	s, _ = s.Edit(Rules{Validate: failWhen("abc")}, "abc")
	require.Equal(t, StateError, s.Visual)

	next, outcome := s.Clear()
	require.Equal(t, Applied, outcome)
	assert.Empty(t, next.Value)
	assert.True(t, next.Focused)
	assert.Equal(t, StateError, next.Visual, "an already focused control is not re-entered")
}

func TestSyncFollowsBaselineUnlessFocused(t *testing.T) {
	s := NewState("", StateDefault, "")
	s = s.Sync(StateError, "server says no")
	assert.Equal(t, StateError, s.Visual)
	assert.Equal(t, "server says no", s.Message)

	s, _ = NewState("", StateDefault, "").Focus()
	s = s.Sync(StateSuccess, "")
	assert.Equal(t, StateFocus, s.Visual)
	assert.Equal(t, StateSuccess, s.Baseline)

	s, _ = s.Blur()
	assert.Equal(t, StateSuccess, s.Visual)
}

func TestLengthCountsGraphemes(t *testing.T) {
	assert.Equal(t, 5, Length("hello"))
	assert.Equal(t, 1, Length("é"))
	assert.Equal(t, 1, Length("👍🏽"))
	assert.Equal(t, 0, Length(""))
}
