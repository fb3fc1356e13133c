package config

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/tui/gallery"
	"github.com/alexisbeaulieu97/formkit/internal/tui/widget"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
	apperrors "github.com/alexisbeaulieu97/formkit/pkg/errors"
)

var masks = map[string]func(string) string{
	"digits":    validate.Digits,
	"upper":     validate.UpperCase,
	"no_spaces": validate.NoSpaces,
	"phone":     validate.PhoneFormat,
}

// parseMask resolves a comma-separated mask list into one mask.
func parseMask(list string) (field.MaskFunc, error) {
	parts := strings.Split(list, ",")
	chain := make([]func(string) string, 0, len(parts))
	for _, name := range parts {
		m, ok := masks[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown mask %q", strings.TrimSpace(name))
		}
		chain = append(chain, m)
	}
	if len(chain) == 1 {
		return chain[0], nil
	}
	return validate.Chain(chain...), nil
}

// GallerySections converts the document into gallery sections. stat
// resolves file paths; nil means os.Stat.
func (c *Config) GallerySections(stat kinds.StatFunc) ([]gallery.Section, error) {
	all := c.AllSections()
	out := make([]gallery.Section, 0, len(all))
	for si, s := range all {
		sec := gallery.Section{Title: s.Title, Fields: make([]widget.Options, 0, len(s.Fields))}
		for fi, f := range s.Fields {
			opts, err := f.WidgetOptions(stat)
			if err != nil {
				return nil, apperrors.NewValidationError(fieldPath(si, fi, "id"), err.Error(), err)
			}
			sec.Fields = append(sec.Fields, opts)
		}
		out = append(out, sec)
	}
	return out, nil
}

// WidgetOptions converts one declared field into widget options.
func (f Field) WidgetOptions(stat kinds.StatFunc) (widget.Options, error) {
	kind, err := kinds.Parse(f.Kind)
	if err != nil {
		return widget.Options{}, err
	}
	settings := f.settings()
	fieldOpts, err := f.FieldOptions(kind, settings, stat)
	if err != nil {
		return widget.Options{}, err
	}
	return widget.Options{
		Kind:     kind,
		Settings: settings,
		Field:    fieldOpts,
		Rows:     f.Rows,
		Stat:     stat,
	}, nil
}

// FieldOptions builds the engine options of the field. The kind's default
// validator runs first, then required, then the declared tag rule.
func (f Field) FieldOptions(kind kinds.Kind, settings kinds.Settings, stat kinds.StatFunc) (field.Options, error) {
	opts := field.Options{
		ID:                f.ID,
		InitialValue:      f.Value,
		ValidationMessage: f.Message,
		CharacterLimit:    f.Limit,
		Clearable:         f.Clearable,
		Decoration: field.Decoration{
			Label:          f.Label,
			Placeholder:    f.Placeholder,
			HelpText:       f.Help,
			Icon:           f.Icon,
			Prefix:         f.Prefix,
			Suffix:         f.Suffix,
			FileUploadText: f.UploadText,
		},
	}

	if f.Variant != "" {
		v, err := field.ParseVariant(f.Variant)
		if err != nil {
			return opts, err
		}
		opts.Variant = v
	}
	if f.State != "" {
		s, err := field.ParseVisualState(f.State)
		if err != nil {
			return opts, err
		}
		opts.Baseline = s
	}
	if f.Mask != "" {
		m, err := parseMask(f.Mask)
		if err != nil {
			return opts, err
		}
		opts.Mask = m
	}

	if !f.Required && f.Validate == "" {
		return opts, nil
	}
	base := kinds.Apply(kind, settings, field.Options{}).OnValidate
	if kind == kinds.File && stat != nil {
		base = kinds.FileValidator(settings.Multiple, stat)
	}
	chain := []func(string) string{}
	if base != nil {
		chain = append(chain, base)
	}
	if f.Required {
		chain = append(chain, validate.Required)
	}
	if f.Validate != "" {
		rule, err := validate.Tag(f.Validate)
		if err != nil {
			return opts, err
		}
		chain = append(chain, rule)
	}
	opts.OnValidate = validate.All(chain...)
	return opts, nil
}

func (f Field) settings() kinds.Settings {
	return kinds.Settings{
		Min:                f.Min,
		Max:                f.Max,
		HideSearchIcon:     f.HideIcon,
		HidePasswordToggle: f.HideToggle,
		Multiple:           f.Multiple,
		Suggestions:        f.Suggestions,
	}
}

// Check runs value through the field's mask, limit and validators, and
// returns the stored value with its validation message.
func (f Field) Check(value string, stat kinds.StatFunc) (stored, message string, err error) {
	kind, err := kinds.Parse(f.Kind)
	if err != nil {
		return "", "", err
	}
	settings := f.settings()
	opts, err := f.FieldOptions(kind, settings, stat)
	if err != nil {
		return "", "", err
	}
	if kind == kinds.File && opts.OnValidate == nil && stat != nil {
		opts.OnValidate = kinds.FileValidator(settings.Multiple, stat)
	}
	opts = kinds.Apply(kind, settings, opts)
	opts.InitialValue = nil
	opts.ValidationMessage = ""
	opts.Baseline = field.StateDefault

	in := field.New(opts)
	in.Edit(value)
	return in.Value(), in.Message(), nil
}
