// Package kinds holds the closed set of semantic control kinds. A kind is
// a preset: a tag, an optional default validator and default decoration.
// Every kind is driven by the same field engine.
package kinds

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
)

// Kind is a semantic control kind.
type Kind string

const (
	Text      Kind = "text"
	Textarea  Kind = "textarea"
	Date      Kind = "date"
	Time      Kind = "time"
	DateTime  Kind = "datetime"
	Month     Kind = "month"
	Email     Kind = "email"
	URL       Kind = "url"
	Telephone Kind = "tel"
	Number    Kind = "number"
	Password  Kind = "password"
	Search    Kind = "search"
	File      Kind = "file"
)

// Suffix glyphs used as default decoration.
const (
	IconCalendar = "▦"
	IconClock    = "◷"
	IconMonth    = "▤"
	IconSearch   = "⌕"
	IconShown    = "◉"
	IconHidden   = "◌"
)

// Preset is the fixed configuration a kind contributes.
type Preset struct {
	Kind         Kind
	Validate     field.ValidateFunc
	Placeholder  string
	Suffix       string
	Autocomplete string
	Multiline    bool
	Secret       bool
}

var presets = map[Kind]Preset{
	Text:      {Kind: Text},
	Textarea:  {Kind: Textarea, Multiline: true},
	Date:      {Kind: Date, Validate: validate.Date, Placeholder: "YYYY-MM-DD", Suffix: IconCalendar},
	Time:      {Kind: Time, Validate: validate.Time, Placeholder: "HH:MM", Suffix: IconClock},
	DateTime:  {Kind: DateTime, Validate: validate.DateTime, Placeholder: "YYYY-MM-DDTHH:MM", Suffix: IconCalendar + IconClock},
	Month:     {Kind: Month, Validate: validate.Month, Placeholder: "YYYY-MM", Suffix: IconMonth},
	Email:     {Kind: Email, Validate: validate.Email, Autocomplete: "email"},
	URL:       {Kind: URL, Validate: validate.URL, Autocomplete: "url"},
	Telephone: {Kind: Telephone, Validate: validate.Phone, Placeholder: "123-456-7890", Autocomplete: "tel"},
	Number:    {Kind: Number, Validate: validate.Number(nil, nil)},
	Password:  {Kind: Password, Secret: true, Suffix: IconHidden, Autocomplete: "current-password"},
	Search:    {Kind: Search, Suffix: IconSearch},
	File:      {Kind: File},
}

var order = []Kind{Text, Textarea, Date, Time, DateTime, Month, Email, URL, Telephone, Number, Password, Search, File}

// All lists every kind in display order.
func All() []Kind {
	return append([]Kind(nil), order...)
}

// Parse resolves a kind name; the empty string is text.
func Parse(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "" {
		return Text, nil
	}
	switch k {
	case "datetime-local", "date-time":
		return DateTime, nil
	case "telephone", "phone":
		return Telephone, nil
	}
	if _, ok := presets[k]; !ok {
		return "", fmt.Errorf("unknown kind %q", name)
	}
	return k, nil
}

// PresetFor returns the preset of k; unknown kinds get the text preset.
func PresetFor(k Kind) Preset {
	if p, ok := presets[k]; ok {
		return p
	}
	return presets[Text]
}

// Settings are the kind-specific knobs.
type Settings struct {
	// Min and Max bound the number kind.
	Min, Max *float64
	// HideSearchIcon drops the search suffix.
	HideSearchIcon bool
	// HidePasswordToggle drops the reveal toggle of the password kind.
	HidePasswordToggle bool
	// Multiple lets the file kind hold several comma separated paths.
	Multiple bool
	// Suggestions is the search corpus ranked against the value.
	Suggestions []string
}

// Apply layers the preset of k under opts: caller-supplied validator,
// placeholder and suffix win over the kind defaults.
func Apply(k Kind, s Settings, opts field.Options) field.Options {
	p := PresetFor(k)

	if opts.OnValidate == nil {
		switch k {
		case Number:
			opts.OnValidate = validate.Number(s.Min, s.Max)
		case File:
			opts.OnValidate = FileValidator(s.Multiple, nil)
		default:
			opts.OnValidate = p.Validate
		}
	}
	if opts.Decoration.Placeholder == "" {
		opts.Decoration.Placeholder = p.Placeholder
	}
	if opts.Decoration.Suffix == "" {
		switch {
		case k == Search && s.HideSearchIcon:
		case k == Password && s.HidePasswordToggle:
		default:
			opts.Decoration.Suffix = p.Suffix
		}
	}
	if k == File && opts.Decoration.FileUploadText == "" {
		opts.Decoration.FileUploadText = "Type a path or paste one to upload your file"
		if s.Multiple {
			opts.Decoration.FileUploadText = "Type paths separated by commas to upload your files"
		}
	}
	return opts
}
