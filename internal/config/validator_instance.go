package config

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/formkit/internal/field"
	"github.com/alexisbeaulieu97/formkit/internal/kinds"
	"github.com/alexisbeaulieu97/formkit/internal/theme"
	"github.com/alexisbeaulieu97/formkit/internal/validate"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	fieldIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		mustRegister(v, "semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		mustRegister(v, "field_id", func(fl validator.FieldLevel) bool {
			return fieldIDPattern.MatchString(fl.Field().String())
		})

		mustRegister(v, "kind", func(fl validator.FieldLevel) bool {
			_, err := kinds.Parse(fl.Field().String())
			return err == nil
		})

		mustRegister(v, "variant", func(fl validator.FieldLevel) bool {
			_, err := field.ParseVariant(fl.Field().String())
			return err == nil
		})

		mustRegister(v, "visual_state", func(fl validator.FieldLevel) bool {
			_, err := field.ParseVisualState(fl.Field().String())
			return err == nil
		})

		mustRegister(v, "theme_name", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseName(fl.Field().String())
			return err == nil
		})

		mustRegister(v, "mask", func(fl validator.FieldLevel) bool {
			_, err := parseMask(fl.Field().String())
			return err == nil
		})

		mustRegister(v, "validator_tag", func(fl validator.FieldLevel) bool {
			_, err := validate.Tag(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Errorf("register validation %q: %w", tag, err))
	}
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
