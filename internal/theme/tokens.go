package theme

import (
	"math"
	"strconv"
	"strings"
)

// Namespaces in the order tokens are exported.
const (
	NamespaceColors       = "colors"
	NamespaceFonts        = "fonts"
	NamespaceFontSizes    = "fontSizes"
	NamespaceSpacing      = "spacing"
	NamespaceBorderRadius = "borderRadius"
)

// Token is one named design value.
type Token struct {
	Namespace string
	Key       string
	Value     string
}

// Variable is the style-variable name the token is mirrored under,
// e.g. "colors-primary".
func (t Token) Variable() string {
	return t.Namespace + "-" + t.Key
}

// Tokens flattens the theme in declaration order.
func (t Theme) Tokens() []Token {
	tokens := []Token{
		{NamespaceColors, "primary", t.Colors.Primary},
		{NamespaceColors, "secondary", t.Colors.Secondary},
		{NamespaceColors, "secondaryRGB", t.Colors.SecondaryRGB},
		{NamespaceColors, "background", t.Colors.Background},
		{NamespaceColors, "text", t.Colors.Text},
		{NamespaceColors, "error", t.Colors.Error},
		{NamespaceColors, "success", t.Colors.Success},
		{NamespaceColors, "disabled", t.Colors.Disabled},
		{NamespaceFonts, "body", t.Fonts.Body},
		{NamespaceFonts, "heading", t.Fonts.Heading},
	}
	tokens = append(tokens, t.FontSizes.tokens(NamespaceFontSizes)...)
	tokens = append(tokens, t.Spacing.tokens(NamespaceSpacing)...)
	tokens = append(tokens, t.BorderRadius.tokens(NamespaceBorderRadius)...)
	return tokens
}

func (s Scale) tokens(namespace string) []Token {
	return []Token{
		{namespace, "extraSmall", s.ExtraSmall},
		{namespace, "small", s.Small},
		{namespace, "medium", s.Medium},
		{namespace, "large", s.Large},
		{namespace, "extraLarge", s.ExtraLarge},
	}
}

// Variables returns the tokens keyed by variable name.
func (t Theme) Variables() map[string]string {
	tokens := t.Tokens()
	vars := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		vars[tok.Variable()] = tok.Value
	}
	return vars
}

// Cells converts a length token ("1rem", "0.6rem", "16px") to terminal
// cells. One rem is one cell; pixels assume a 16px root. Unparseable values
// yield zero.
func Cells(value string) int {
	v := strings.TrimSpace(value)
	scale := 1.0
	switch {
	case strings.HasSuffix(v, "rem"):
		v = strings.TrimSuffix(v, "rem")
	case strings.HasSuffix(v, "em"):
		v = strings.TrimSuffix(v, "em")
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
		scale = 1.0 / 16
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(math.Round(f * scale))
}
