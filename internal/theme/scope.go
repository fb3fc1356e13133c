package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Scope is an ambient style-variable namespace that unstyled output can
// read from without being re-rendered.
type Scope interface {
	Set(name, value string) error
}

// Export mirrors every token of t into scope. It is kept apart from the
// toggle so state changes stay testable without any output surface.
func Export(scope Scope, t Theme) error {
	var errs []error
	for _, tok := range t.Tokens() {
		if err := scope.Set(tok.Variable(), tok.Value); err != nil {
			errs = append(errs, fmt.Errorf("set %s: %w", tok.Variable(), err))
		}
	}
	return errors.Join(errs...)
}

// VariableScope is an in-memory variable table, the document-root
// equivalent for programs that look values up by name.
type VariableScope struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewVariableScope returns an empty scope.
func NewVariableScope() *VariableScope {
	return &VariableScope{vars: make(map[string]string)}
}

// Set stores value under name.
func (s *VariableScope) Set(name, value string) error {
	s.mu.Lock()
	s.vars[name] = value
	s.mu.Unlock()
	return nil
}

// Get returns the value stored under name.
func (s *VariableScope) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Var resolves a "var(--name)" reference or a bare name.
func (s *VariableScope) Var(ref string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(ref, "var("), ")")
	name = strings.TrimPrefix(name, "--")
	v, _ := s.Get(name)
	return v
}

// Snapshot copies the current table.
func (s *VariableScope) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Names lists the stored variable names in sorted order.
func (s *VariableScope) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// EnvScope mirrors tokens into process environment variables
// (colors-primary becomes <PREFIX>COLORS_PRIMARY) so child processes see
// the palette.
type EnvScope struct {
	Prefix string
}

// Set writes the environment variable for name.
func (s EnvScope) Set(name, value string) error {
	return os.Setenv(EnvName(s.Prefix, name), value)
}

// EnvName converts a variable name to an environment variable name.
func EnvName(prefix, name string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, r := range name {
		switch {
		case r == '-':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z' && i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z':
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteString(strings.ToUpper(string(r)))
		}
	}
	return b.String()
}

// TerminalScope mirrors the colour tokens that have a terminal equivalent
// into the terminal's default colours, so plain text written to the same
// terminal picks up the palette. Tokens without an equivalent are ignored.
type TerminalScope struct {
	out *termenv.Output
}

// NewTerminalScope writes control sequences to w.
func NewTerminalScope(w io.Writer) *TerminalScope {
	return &TerminalScope{out: termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))}
}

// Set applies background, text and primary colours; the primary colour
// drives the cursor.
func (s *TerminalScope) Set(name, value string) error {
	color := termenv.RGBColor(value)
	switch name {
	case NamespaceColors + "-background":
		s.out.SetBackgroundColor(color)
	case NamespaceColors + "-text":
		s.out.SetForegroundColor(color)
	case NamespaceColors + "-primary":
		s.out.SetCursorColor(color)
	}
	return nil
}
