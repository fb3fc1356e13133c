package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	apperrors "github.com/alexisbeaulieu97/formkit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string)
	for si, section := range cfg.AllSections() {
		for fi, f := range section.Fields {
			path := fieldPath(si, fi, "id")
			if prev, exists := seen[f.ID]; exists {
				return apperrors.NewValidationError(path, fmt.Sprintf("duplicate field id %q (first declared at %s)", f.ID, prev), nil)
			}
			seen[f.ID] = path

			if err := validateField(f, si, fi); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateField checks the rules a struct tag cannot express.
func validateField(f Field, section, index int) error {
	kind, _ := kinds.Parse(f.Kind)

	if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
		return apperrors.NewValidationError(fieldPath(section, index, "min"),
			fmt.Sprintf("min %v is greater than max %v", *f.Min, *f.Max), nil)
	}
	if (f.Min != nil || f.Max != nil) && kind != kinds.Number {
		return apperrors.NewValidationError(fieldPath(section, index, "min"),
			fmt.Sprintf("bounds only apply to the number kind, not %s", kind), nil)
	}
	if len(f.Suggestions) > 0 && kind != kinds.Search {
		return apperrors.NewValidationError(fieldPath(section, index, "suggestions"),
			fmt.Sprintf("suggestions only apply to the search kind, not %s", kind), nil)
	}
	if f.Multiple && kind != kinds.File {
		return apperrors.NewValidationError(fieldPath(section, index, "multiple"),
			fmt.Sprintf("multiple only applies to the file kind, not %s", kind), nil)
	}
	if f.Limit > 0 && field.Length(f.Value) > f.Limit {
		return apperrors.NewValidationError(fieldPath(section, index, "value"),
			fmt.Sprintf("value is %d characters, over the limit of %d", field.Length(f.Value), f.Limit), nil)
	}

	return nil
}
