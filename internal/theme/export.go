package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects how Write renders a theme's variables.
type Format string

const (
	FormatCSS  Format = "css"
	FormatEnv  Format = "env"
	FormatJSON Format = "json"
)

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSS, FormatEnv, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want css, env or json)", s)
	}
}

// Write renders the theme's variables so external stylesheets or scripts
// can reference them by name.
func Write(w io.Writer, t Theme, format Format) error {
	switch format {
	case FormatCSS:
		if _, err := fmt.Fprintln(w, ":root {"); err != nil {
			return err
		}
		for _, tok := range t.Tokens() {
			if _, err := fmt.Fprintf(w, "  --%s: %s;\n", tok.Variable(), tok.Value); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, "}")
		return err
	case FormatEnv:
		for _, tok := range t.Tokens() {
			if _, err := fmt.Fprintf(w, "%s=%q\n", EnvName("", tok.Variable()), tok.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.Variables())
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
