package field

import (
	"strings"

	"github.com/alexisbeaulieu97/formkit/internal/theme"
)

// Attributes is the rendered attribute set of a control. It is a pure
// function of the control state, its options and the active theme.
type Attributes struct {
	ID           string
	HelpID       string
	ValidationID string
	// DescribedBy lists the IDs of the help and validation text on
	// display, space separated.
	DescribedBy string

	State   VisualState
	Variant Variant

	Disabled    bool
	ReadOnly    bool
	Invalid     bool
	Interactive bool
	Placeholder string

	Focused     bool
	HasValue    bool
	HasPrefix   bool
	HasSuffix   bool
	ShowClear   bool
	ShowSpinner bool
	Dark        bool
}

// Derive computes the attributes for state s.
func Derive(s State, id string, variant Variant, deco Decoration, clearable bool, t theme.Theme) Attributes {
	a := Attributes{
		ID:           id,
		HelpID:       id + "-help",
		ValidationID: id + "-validation",
		State:        s.Visual,
		Variant:      variant,
		Disabled:     s.Visual == StateDisabled || s.Visual == StateLoading,
		ReadOnly:     s.Visual == StateReadOnly,
		Invalid:      s.Visual == StateError,
		Interactive:  s.Visual.Interactive(),
		Focused:      s.Focused,
		HasValue:     s.Value != "",
		ShowSpinner:  s.Visual == StateLoading,
		Dark:         t.IsDark(),
	}
	if variant != VariantFloating {
		a.Placeholder = deco.Placeholder
	}
	a.ShowClear = clearable && a.HasValue
	a.HasPrefix = deco.Prefix != "" || deco.Icon != ""
	a.HasSuffix = deco.Suffix != "" || a.ShowClear

	var described []string
	if deco.HelpText != "" {
		described = append(described, a.HelpID)
	}
	if s.Message != "" {
		described = append(described, a.ValidationID)
	}
	a.DescribedBy = strings.Join(described, " ")
	return a
}

// Attributes derives the control's attributes under theme t.
func (in *Input) Attributes(t theme.Theme) Attributes {
	return Derive(in.state, in.id, in.opts.Variant, in.opts.Decoration, in.opts.Clearable, t)
}

// Classes returns the composed class payload: the base class, the variant,
// the visual state and one class per active modifier.
func (a Attributes) Classes() []string {
	classes := []string{"input", a.Variant.String(), a.State.String()}
	for _, mod := range []struct {
		on   bool
		name string
	}{
		{a.Focused, "focused"},
		{a.HasValue, "has-value"},
		{a.HasPrefix, "has-prefix"},
		{a.HasSuffix, "has-suffix"},
		{a.Dark, "dark-mode"},
	} {
		if mod.on {
			classes = append(classes, mod.name)
		}
	}
	return classes
}
