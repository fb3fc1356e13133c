// Package validate holds the reusable value validators and masks.
//
// A validator returns "" for a valid value and a human-readable message
// otherwise. Validators never panic and never return errors; a failing
// value is ordinary data.
package validate

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Messages shown by the built-in validators.
const (
	EmailMessage    = "Please enter a valid email address"
	URLMessage      = "Please enter a valid URL"
	PhoneMessage    = "Please enter a valid phone number"
	RequiredMessage = "This field is required"
	NumberMessage   = "Please enter a valid number"
)

// space is the whitespace class browsers use for \s: ASCII whitespace,
// vertical tab, Unicode space separators, line/paragraph separators and
// the byte order mark. Go's \s covers only the ASCII part.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{feff}`

var (
	emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	urlPattern   = regexp.MustCompile(`^(https?:\/\/)?([\da-z\.-]+)\.([a-z\.]{2,6})([\/\w \.-]*)*\/?$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-` + space + `.]?[0-9]{3}[-` + space + `.]?[0-9]{4,6}$`)
)

// Email accepts local@domain.tld where no part contains whitespace or '@'.
func Email(s string) string {
	if emailPattern.MatchString(s) {
		return ""
	}
	return EmailMessage
}

// URL accepts an optional http(s) scheme, a host ending in a 2-6 letter
// TLD and an optional path.
func URL(s string) string {
	if urlPattern.MatchString(s) {
		return ""
	}
	return URLMessage
}

// Phone accepts 3+3+(4-6) digit groups with an optional leading '+',
// optional parentheses around the first group and optional '-', ' ' or '.'
// separators.
func Phone(s string) string {
	if phonePattern.MatchString(s) {
		return ""
	}
	return PhoneMessage
}

// Required fails on empty or whitespace-only input.
func Required(s string) string {
	if strings.TrimSpace(s) == "" {
		return RequiredMessage
	}
	return ""
}

// Number returns a validator checking that the value is numeric and within
// the optional inclusive bounds.
func Number(lower, upper *float64) func(string) string {
	return func(s string) string {
		return NumberValue(lower, upper, s)
	}
}

// NumberValue validates raw, which may be a string, any numeric type or a
// string slice (only the first element is considered). Strings are trimmed
// and an empty string counts as zero.
func NumberValue(lower, upper *float64, raw any) string {
	n, ok := toNumber(raw)
	if !ok {
		return NumberMessage
	}
	if lower != nil && n < *lower {
		return "Value must be at least " + formatNumber(*lower)
	}
	if upper != nil && n > *upper {
		return "Value must be at most " + formatNumber(*upper)
	}
	return ""
}

// Bound is a convenience for building optional bounds.
func Bound(v float64) *float64 { return &v }

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, v == v
	case float32:
		return float64(v), v == v
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		return parseNumber(v)
	case []string:
		if len(v) == 0 {
			return 0, true
		}
		return parseNumber(v[0])
	default:
		return 0, false
	}
}

// parseNumber follows the usual numeric text conventions of form inputs:
// Infinity is spelled out and values too large to represent saturate.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if lower := strings.ToLower(s); strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
