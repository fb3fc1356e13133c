package gallery

import (
	"strings"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/tui/widget"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
)

// Section is a titled group of controls.
type Section struct {
	Title  string
	Fields []widget.Options
}

var searchCorpus = []string{
	"apple", "apricot", "avocado", "banana", "blackberry", "blueberry",
	"cherry", "coconut", "grape", "grapefruit", "lemon", "lime", "mango",
	"orange", "papaya", "peach", "pear", "pineapple", "plum", "raspberry",
}

var kindHelp = map[kinds.Kind]string{
	kinds.Textarea:  "Enter inserts a line break",
	kinds.Telephone: "Digits are formatted as you type",
	kinds.Number:    "Between 0 and 100",
	kinds.Password:  "ctrl+r shows or hides the value",
	kinds.Search:    "Matches are ranked as you type",
}

// Showcase returns the built-in sections: every kind, every variant and
// every visual state.
func Showcase() []Section {
	return []Section{
		{Title: "Kinds", Fields: kindFields()},
		{Title: "Variants", Fields: variantFields()},
		{Title: "States", Fields: stateFields()},
	}
}

func kindFields() []widget.Options {
	all := kinds.All()
	out := make([]widget.Options, 0, len(all))
	for _, k := range all {
		opts := widget.Options{
			Kind: k,
			Field: field.Options{
				ID:         "kind-" + string(k),
				Clearable:  true,
				Decoration: field.Decoration{Label: title(string(k)), HelpText: kindHelp[k]},
			},
		}
		switch k {
		case kinds.Textarea:
			opts.Field.CharacterLimit = 200
		case kinds.Telephone:
			opts.Field.Mask = validate.PhoneFormat
			opts.Field.Decoration.Placeholder = "(555) 123-4567"
		case kinds.Number:
			opts.Settings.Min = validate.Bound(0)
			opts.Settings.Max = validate.Bound(100)
		case kinds.Search:
			opts.Settings.Suggestions = searchCorpus
		}
		out = append(out, opts)
	}
	return out
}

func variantFields() []widget.Options {
	variants := field.Variants()
	out := make([]widget.Options, 0, len(variants))
	for _, v := range variants {
		out = append(out, widget.Options{
			Field: field.Options{
				ID:        "variant-" + v.String(),
				Variant:   v,
				Clearable: true,
				Decoration: field.Decoration{
					Label:       title(v.String()),
					Placeholder: "Type something",
				},
			},
		})
	}
	return out
}

var stateMessages = map[field.VisualState]string{
	field.StateError:   "This field has an error",
	field.StateSuccess: "Looks good",
}

func stateFields() []widget.Options {
	states := field.VisualStates()
	out := make([]widget.Options, 0, len(states))
	for _, s := range states {
		out = append(out, widget.Options{
			Field: field.Options{
				ID:                "state-" + s.String(),
				InitialValue:      "Sample value",
				Baseline:          s,
				ValidationMessage: stateMessages[s],
				Decoration:        field.Decoration{Label: title(s.String())},
			},
		})
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
