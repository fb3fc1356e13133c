// Package theme holds the two canonical design-token records, the provider
// that owns which one is active, and the scopes the active tokens are
// mirrored into.
package theme

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/formkit/pkg/errors"
)

// Name identifies one of the canonical themes.
type Name string

const (
	NameLight Name = "light"
	NameDark  Name = "dark"
)

// Colors is the colour namespace of a theme.
type Colors struct {
	Primary      string
	Secondary    string
	SecondaryRGB string
	Background   string
	Text         string
	Error        string
	Success      string
	Disabled     string
}

// Fonts is the font-family namespace of a theme.
type Fonts struct {
	Body    string
	Heading string
}

// Scale is a five step size scale shared by font sizes, spacing and radii.
type Scale struct {
	ExtraSmall string
	Small      string
	Medium     string
	Large      string
	ExtraLarge string
}

// Theme is an immutable record of design tokens. Themes are swapped
// wholesale, never mutated in place.
type Theme struct {
	Name         Name
	Colors       Colors
	Fonts        Fonts
	FontSizes    Scale
	Spacing      Scale
	BorderRadius Scale
}

// Light returns the light theme.
func Light() Theme {
	return Theme{
		Name: NameLight,
		Colors: Colors{
			Primary:      "#007bff",
			Secondary:    "#6c757d",
			SecondaryRGB: "108, 117, 125",
			Background:   "#ffffff",
			Text:         "#333333",
			Error:        "#f62539",
			Success:      "#09c729",
			Disabled:     "#e9ecef",
		},
		Fonts: Fonts{
			Body:    "Arial, sans-serif",
			Heading: "Georgia, serif",
		},
		FontSizes: Scale{
			ExtraSmall: "0.5rem",
			Small:      "0.875rem",
			Medium:     "1rem",
			Large:      "1.25rem",
			ExtraLarge: "2rem",
		},
		Spacing: Scale{
			ExtraSmall: "0.2rem",
			Small:      "0.6rem",
			Medium:     "1rem",
			Large:      "1.5rem",
			ExtraLarge: "2rem",
		},
		BorderRadius: Scale{
			ExtraSmall: "0.25rem",
			Small:      "0.25rem",
			Medium:     "0.5rem",
			Large:      "1rem",
			ExtraLarge: "2rem",
		},
	}
}

// Dark returns the dark theme: the light theme with only colours replaced.
func Dark() Theme {
	t := Light()
	t.Name = NameDark
	t.Colors = Colors{
		Primary:      "#4dabf7",
		Secondary:    "#ced4da",
		SecondaryRGB: "206, 212, 218",
		Background:   "#242424",
		Text:         "#f8f9fa",
		Error:        "#ba0012",
		Success:      "#13f639",
		Disabled:     "#495057",
	}
	return t
}

// ParseName resolves a user-supplied theme name.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToLower(strings.TrimSpace(s))) {
	case NameLight, "":
		return NameLight, nil
	case NameDark:
		return NameDark, nil
	default:
		return "", apperrors.NewConfigurationError("theme", fmt.Sprintf("unknown theme %q", s), nil)
	}
}

// Lookup returns the canonical theme with the given name.
func Lookup(name Name) (Theme, error) {
	switch name {
	case NameLight:
		return Light(), nil
	case NameDark:
		return Dark(), nil
	default:
		return Theme{}, apperrors.NewConfigurationError("theme", fmt.Sprintf("unknown theme %q", name), nil)
	}
}

// Other returns the name toggling would switch to.
func (n Name) Other() Name {
	if n == NameDark {
		return NameLight
	}
	return NameDark
}

// IsDark reports whether t uses the dark palette. Custom themes are compared
// by background, which is how controls pick their dark-mode decoration.
func (t Theme) IsDark() bool {
	return t.Colors.Background == Dark().Colors.Background
}
