package validate

import (
	"strings"
	"unicode"
)

// Digits keeps only decimal digits.
func Digits(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// UpperCase upper-cases the input.
func UpperCase(raw string) string {
	return strings.ToUpper(raw)
}

// NoSpaces strips every whitespace rune.
func NoSpaces(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// PhoneFormat reformats the first ten digits of raw as "(555) 123-4567",
// emitting only the groups typed so far.
func PhoneFormat(raw string) string {
	d := Digits(raw)
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 3:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	}
}

// Chain applies masks left to right.
func Chain(masks ...func(string) string) func(string) string {
	return func(raw string) string {
		for _, m := range masks {
			if m != nil {
				raw = m(raw)
			}
		}
		return raw
	}
}
