package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// custom tags map a validator tag onto one of this package's validators.
var custom = map[string]func(string) string{
	"phone":     Phone,
	"loose_url": URL,
	"date":      Date,
	"time":      Time,
	"date_time": DateTime,
	"month":     Month,
}

// Validator returns the shared validator with the form tags registered:
// phone, loose_url, date, time, date_time and month.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		for tag, fn := range custom {
			fn := fn
			err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return fn(fl.Field().String()) == ""
			})
			if err != nil {
				panic(fmt.Errorf("register validation %q: %w", tag, err))
			}
		}
		validateInst = v
	})
	return validateInst
}

// Tag builds a validator from a struct-tag style rule such as
// "required,email" or "omitempty,min=3,max=20". It fails when the rule
// references an unknown tag or a malformed parameter.
func Tag(rule string) (func(string) string, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return nil, errors.New("empty validation rule")
	}
	if _, err := check(rule, "x"); err != nil {
		return nil, err
	}
	return func(s string) string {
		msg, err := check(rule, s)
		if err != nil {
			return err.Error()
		}
		return msg
	}, nil
}

// MustTag is Tag for rules known at compile time.
func MustTag(rule string) func(string) string {
	fn, err := Tag(rule)
	if err != nil {
		panic(err)
	}
	return fn
}

// check runs rule against value. The validator panics on undefined tags
// and unparsable parameters; those panics become errors.
func check(rule, value string) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid validation rule %q: %v", rule, r)
		}
	}()

	verr := Validator().Var(value, rule)
	if verr == nil {
		return "", nil
	}
	var ves validator.ValidationErrors
	if errors.As(verr, &ves) && len(ves) > 0 {
		return Message(ves[0].Tag(), ves[0].Param()), nil
	}
	return "", verr
}

// Message is the display text for a failed validator tag.
func Message(tag, param string) string {
	switch tag {
	case "required":
		return RequiredMessage
	case "email":
		return EmailMessage
	case "url", "uri", "http_url", "loose_url":
		return URLMessage
	case "phone", "e164":
		return PhoneMessage
	case "number", "numeric":
		return NumberMessage
	case "date":
		return DateMessage
	case "time":
		return TimeMessage
	case "date_time", "datetime":
		return DateTimeMessage
	case "month":
		return MonthMessage
	case "min", "gte":
		return fmt.Sprintf("Must be at least %s characters", param)
	case "max", "lte":
		return fmt.Sprintf("Must be at most %s characters", param)
	case "gt":
		return fmt.Sprintf("Must be longer than %s characters", param)
	case "lt":
		return fmt.Sprintf("Must be shorter than %s characters", param)
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", param)
	case "alpha":
		return "Only letters are allowed"
	case "alphanum":
		return "Only letters and digits are allowed"
	case "oneof":
		return "Must be one of: " + strings.Join(strings.Fields(param), ", ")
	default:
		return fmt.Sprintf("Failed the %q rule", tag)
	}
}
