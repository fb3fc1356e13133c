// Package field implements the state machine shared by every text control:
// how an edit becomes a stored value, how that value is validated, and how
// the resulting visual state gates interaction.
//
// Transitions are pure methods on State. Input wraps a State with the
// caller's callbacks and presentation options.
package field

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// VisualState is the interaction state currently displayed by a control.
type VisualState int

const (
	StateDefault VisualState = iota
	StateHover
	StateFocus
	StateDisabled
	StateReadOnly
	StateError
	StateSuccess
	StateLoading
)

var visualStateNames = [...]string{
	StateDefault:  "default",
	StateHover:    "hover",
	StateFocus:    "focus",
	StateDisabled: "disabled",
	StateReadOnly: "readonly",
	StateError:    "error",
	StateSuccess:  "success",
	StateLoading:  "loading",
}

// VisualStates lists every state in declaration order.
func VisualStates() []VisualState {
	out := make([]VisualState, len(visualStateNames))
	for i := range visualStateNames {
		out[i] = VisualState(i)
	}
	return out
}

func (s VisualState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("VisualState(%d)", int(s))
	}
	return visualStateNames[s]
}

// Valid reports whether s is one of the declared states.
func (s VisualState) Valid() bool {
	return s >= StateDefault && s <= StateLoading
}

// Interactive reports whether edit, focus and blur are wired in state s.
func (s VisualState) Interactive() bool {
	return s != StateReadOnly && s != StateLoading
}

// ParseVisualState resolves a state name; the empty string is default.
func ParseVisualState(name string) (VisualState, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StateDefault, nil
	}
	for i, n := range visualStateNames {
		if n == name {
			return VisualState(i), nil
		}
	}
	return StateDefault, fmt.Errorf("unknown visual state %q", name)
}

// Variant is the presentation variant of a control.
type Variant int

const (
	VariantNormal Variant = iota
	VariantFloating
	VariantOutlined
	VariantFilled
	VariantUnderlined
	VariantRounded
)

var variantNames = [...]string{
	VariantNormal:     "normal",
	VariantFloating:   "floating",
	VariantOutlined:   "outlined",
	VariantFilled:     "filled",
	VariantUnderlined: "underlined",
	VariantRounded:    "rounded",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, len(variantNames))
	for i := range variantNames {
		out[i] = Variant(i)
	}
	return out
}

func (v Variant) String() string {
	if v < VariantNormal || v > VariantRounded {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant resolves a variant name; the empty string is normal.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantNormal, nil
	}
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return VariantNormal, fmt.Errorf("unknown variant %q", name)
}

// ValidateFunc classifies a value: "" means valid, anything else is the
// message to display.
type ValidateFunc func(value string) string

// MaskFunc rewrites raw input before it is limited, stored or validated.
type MaskFunc func(raw string) string

// Rules are the value constraints applied by Edit.
type Rules struct {
	// CharacterLimit caps Length(value); zero disables the cap.
	CharacterLimit int
	Mask           MaskFunc
	Validate       ValidateFunc
}

// Outcome describes what a transition did.
type Outcome int

const (
	// Applied means the state changed and callbacks should fire.
	Applied Outcome = iota
	// Gated means the current visual state suppresses the interaction.
	Gated
	// OverLimit means the edit was rejected by the character limit.
	OverLimit
	// Unavailable means the operation has nothing to act on.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Gated:
		return "gated"
	case OverLimit:
		return "over_limit"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// State is the per-control state. The zero value is an empty, unfocused
// control in the default state.
type State struct {
	Value    string
	Focused  bool
	Visual   VisualState
	Baseline VisualState
	// Message is the validation text on display; "" when there is none.
	Message string
}

// NewState returns the initial state for a control: Visual starts at the
// baseline. Unknown baselines are treated as default.
func NewState(value string, baseline VisualState, message string) State {
	if !baseline.Valid() {
		baseline = StateDefault
	}
	return State{Value: value, Visual: baseline, Baseline: baseline, Message: message}
}

// Length counts user-perceived characters (grapheme clusters).
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Edit applies raw input. The mask runs first, then the limit check; an
// edit over the limit leaves the state untouched. With a validator the
// visual state becomes error or success; without one it is left alone.
func (s State) Edit(r Rules, raw string) (State, Outcome) {
	if !s.Visual.Interactive() {
		return s, Gated
	}
	if r.Mask != nil {
		raw = r.Mask(raw)
	}
	if r.CharacterLimit > 0 && Length(raw) > r.CharacterLimit {
		return s, OverLimit
	}

	s.Value = raw
	if r.Validate != nil {
		s.Message = r.Validate(raw)
		if s.Message != "" {
			s.Visual = StateError
		} else {
			s.Visual = StateSuccess
		}
	}
	return s, Applied
}

// Focus enters the focus state. The prior visual state is discarded, not
// stacked.
func (s State) Focus() (State, Outcome) {
	if !s.Visual.Interactive() {
		return s, Gated
	}
	s.Focused = true
	s.Visual = StateFocus
	return s, Applied
}

// Blur leaves focus and resets the visual state to the caller's baseline,
// dropping any validation-derived state.
func (s State) Blur() (State, Outcome) {
	if !s.Visual.Interactive() {
		return s, Gated
	}
	s.Focused = false
	s.Visual = s.Baseline
	return s, Applied
}

// Clear empties a non-empty value and returns focus to the control. A
// control that already has focus keeps its visual state. It is
// unavailable while the control is disabled, read-only or loading.
func (s State) Clear() (State, Outcome) {
	if !s.Visual.Interactive() || s.Visual == StateDisabled {
		return s, Gated
	}
	if s.Value == "" {
		return s, Unavailable
	}
	s.Value = ""
	if s.Focused {
		return s, Applied
	}
	return s.Focus()
}

// Sync re-applies caller-owned inputs. The baseline and message are
// replaced; the visual state follows the baseline unless the control is
// focused.
func (s State) Sync(baseline VisualState, message string) State {
	if !baseline.Valid() {
		baseline = StateDefault
	}
	s.Baseline = baseline
	s.Message = message
	if !s.Focused {
		s.Visual = baseline
	}
	return s
}
