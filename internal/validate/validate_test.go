package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.Empty(t, Email("a@b.com"))
	assert.Empty(t, Email("first.last+tag@sub.example.org"))
	for _, bad := range []string{
		"not-an-email", "", "a@b", "a b@c.com", "a@@b.com", "@b.com",
		"a\u00a0b@c.com", "a\vb@c.com", "a@b\u2003c.com", "a@b.c\u2028om", "\ufeffa@b.com",
	} {
		assert.Equal(t, EmailMessage, Email(bad), bad)
	}
}

func TestURL(t *testing.T) {
	for _, ok := range []string{"example.com", "https://example.com", "http://www.example.co.uk/path/to", "example.com/"} {
		assert.Empty(t, URL(ok), ok)
	}
	for _, bad := range []string{"", "example", "ftp://example.com", "https://EXAMPLE.COM"} {
		assert.Equal(t, URLMessage, URL(bad), bad)
	}
}

func TestPhone(t *testing.T) {
	for _, ok := range []string{
		"5551234567", "(555) 123-4567", "+555.123.4567", "555-123-456789",
		"555\u00a0123\u00a04567", "555\u3000123\v4567",
	} {
		assert.Empty(t, Phone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "555-123-45", "phone"} {
		assert.Equal(t, PhoneMessage, Phone(bad), bad)
	}
}

func TestRequired(t *testing.T) {
	assert.Equal(t, RequiredMessage, Required(""))
	assert.Equal(t, RequiredMessage, Required(" \t\n"))
	assert.Empty(t, Required(" x "))
}

func TestNumber(t *testing.T) {
	lower, upper := Bound(0), Bound(100)

	assert.Equal(t, "Value must be at most 100", NumberValue(lower, upper, "150"))
	assert.Empty(t, NumberValue(lower, upper, "50"))
	assert.Equal(t, "Value must be at least 0", NumberValue(lower, upper, "-1"))
	assert.Equal(t, NumberMessage, NumberValue(lower, upper, "abc"))
	assert.Equal(t, "Value must be at least 2.5", NumberValue(Bound(2.5), nil, 1))
	assert.Empty(t, NumberValue(nil, nil, " 42 "))
	assert.Empty(t, NumberValue(nil, nil, []string{"7", "x"}))
	assert.Equal(t, NumberMessage, NumberValue(nil, nil, []string{"x", "7"}))
	assert.Empty(t, NumberValue(lower, upper, ""), "empty counts as zero")
	assert.Equal(t, NumberMessage, NumberValue(nil, nil, "NaN"))
	assert.Equal(t, NumberMessage, NumberValue(nil, nil, "inf"))
	assert.Equal(t, "Value must be at most 100", NumberValue(nil, upper, "Infinity"))
	assert.Equal(t, "Value must be at most 100", NumberValue(nil, upper, "1e400"))
	assert.Equal(t, NumberMessage, NumberValue(nil, nil, struct{}{}))

	check := Number(lower, upper)
	assert.Equal(t, "Value must be at most 100", check("100.5"))
	assert.Empty(t, check("1e2"))
}

func TestLayouts(t *testing.T) {
	assert.Empty(t, Date("2024-02-29"))
	assert.Equal(t, DateMessage, Date("2023-02-29"))
	assert.Empty(t, Time("23:59"))
	assert.Equal(t, TimeMessage, Time("24:00"))
	assert.Empty(t, DateTime("2024-01-01T08:30"))
	assert.Equal(t, DateTimeMessage, DateTime("2024-01-01 08:30"))
	assert.Empty(t, Month("2024-12"))
	assert.Equal(t, MonthMessage, Month("2024-13"))
	assert.Empty(t, Month(""), "empty values are left to Required")
}

func TestAll(t *testing.T) {
	v := All(Required, nil, Email)
	assert.Equal(t, RequiredMessage, v(""))
	assert.Equal(t, EmailMessage, v("x"))
	assert.Empty(t, v("x@y.io"))
}

func TestTag(t *testing.T) {
	v, err := Tag("required,email")
	require.NoError(t, err)
	assert.Equal(t, RequiredMessage, v(""))
	assert.Equal(t, EmailMessage, v("nope"))
	assert.Empty(t, v("a@b.com"))

	v, err = Tag("omitempty,min=3,max=5")
	require.NoError(t, err)
	assert.Empty(t, v(""))
	assert.Equal(t, "Must be at least 3 characters", v("ab"))
	assert.Equal(t, "Must be at most 5 characters", v("abcdef"))

	v, err = Tag("oneof=red green")
	require.NoError(t, err)
	assert.Equal(t, "Must be one of: red, green", v("blue"))
}

func TestValidatorRegistersFormTags(t *testing.T) {
	var v any
	require.NotPanics(t, func() { v = Validator() })
	require.NotNil(t, v)
	for tag := range custom {
		_, err := Tag(tag)
		assert.NoError(t, err, tag)
	}
}

func TestTagCustomRules(t *testing.T) {
	v := MustTag("required,phone")
	assert.Empty(t, v("555-123-4567"))
	assert.Equal(t, PhoneMessage, v("555"))

	v = MustTag("date")
	assert.Equal(t, DateMessage, v("yesterday"))
	assert.Empty(t, v("2024-06-01"))

	v = MustTag("date_time")
	assert.Equal(t, DateTimeMessage, v("2024-06-01"))
}

func TestTagRejectsBadRules(t *testing.T) {
	_, err := Tag("")
	require.Error(t, err)

	_, err = Tag("no_such_rule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_rule")

	_, err = Tag("min=abc")
	require.Error(t, err)

	assert.Panics(t, func() { MustTag("no_such_rule") })
}

func TestMasks(t *testing.T) {
	assert.Equal(t, "5551234", Digits("555-12a34"))
	assert.Equal(t, "ABC", UpperCase("abc"))
	assert.Equal(t, "abc", NoSpaces(" a b\tc "))
	assert.Equal(t, "", PhoneFormat("abc"))
	assert.Equal(t, "(55", PhoneFormat("55"))
	assert.Equal(t, "(555) 12", PhoneFormat("55512"))
	assert.Equal(t, "(555) 123-4567", PhoneFormat("555123456789"))
	assert.Empty(t, Phone(PhoneFormat("5551234567")))

	chained := Chain(NoSpaces, nil, UpperCase)
	assert.Equal(t, "AB", chained("a b"))
}

func TestMasksAreIdempotent(t *testing.T) {
	masks := map[string]func(string) string{
		"digits":    Digits,
		"upper":     UpperCase,
		"no_spaces": NoSpaces,
		"phone":     PhoneFormat,
	}
	inputs := []string{"", "a", "555 123 4567", "(555) 123-4567 ext 9", "ümlaut ß"}
	for name, m := range masks {
		for _, in := range inputs {
			once := m(in)
			assert.Equal(t, once, m(once), "%s(%q)", name, in)
		}
	}
}
