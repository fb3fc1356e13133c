package validate

import (
	"strings"
	"time"
)

// Layouts accepted by the calendar and clock validators.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
	MonthLayout    = "2006-01"
)

// Layout returns a validator accepting values that parse with layout.
// Empty values pass; combine with Required to demand one.
func Layout(layout, message string) func(string) string {
	return func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return ""
		}
		if _, err := time.Parse(layout, s); err != nil {
			return message
		}
		return ""
	}
}

// Messages shown by the calendar and clock validators.
const (
	DateMessage     = "Please enter a valid date (YYYY-MM-DD)"
	TimeMessage     = "Please enter a valid time (HH:MM)"
	DateTimeMessage = "Please enter a valid date and time (YYYY-MM-DDTHH:MM)"
	MonthMessage    = "Please enter a valid month (YYYY-MM)"
)

var (
	// Date accepts YYYY-MM-DD.
	Date = Layout(DateLayout, DateMessage)
	// Time accepts 24-hour HH:MM.
	Time = Layout(TimeLayout, TimeMessage)
	// DateTime accepts YYYY-MM-DDTHH:MM.
	DateTime = Layout(DateTimeLayout, DateTimeMessage)
	// Month accepts YYYY-MM.
	Month = Layout(MonthLayout, MonthMessage)
)

// All returns a validator reporting the first failing message of fns.
func All(fns ...func(string) string) func(string) string {
	return func(s string) string {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if msg := fn(s); msg != "" {
				return msg
			}
		}
		return ""
	}
}
