package theme

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/formkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/formkit/pkg/errors"
)

// ErrNoProvider is returned when the theme is read from a context that no
// Provider was attached to.
var ErrNoProvider = apperrors.NewConfigurationError("theme", "theme accessed outside a provider scope", nil)

// Provider owns the active theme for one UI root. Controls receive the
// Theme value it returns; only Toggle changes it.
type Provider struct {
	mu     sync.RWMutex
	active Name
	scopes []Scope
	log    *logger.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger attaches a logger for toggle and export events.
func WithLogger(log *logger.Logger) ProviderOption {
	return func(p *Provider) {
		p.log = log.With("component", "theme")
	}
}

// NewProvider creates a provider starting on initial. Unknown names fall
// back to light.
func NewProvider(initial Name, opts ...ProviderOption) *Provider {
	if initial != NameDark {
		initial = NameLight
	}
	p := &Provider{active: initial}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Theme returns the active theme. It never fails.
func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	t, _ := Lookup(p.active)
	return t
}

// Name returns the active theme name.
func (p *Provider) Name() Name {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.active
}

// Attach registers scope and mirrors the active theme into it immediately.
func (p *Provider) Attach(scope Scope) error {
	p.mu.Lock()
	p.scopes = append(p.scopes, scope)
	p.mu.Unlock()
	return Export(scope, p.Theme())
}

// Toggle flips between light and dark, then mirrors the new theme into
// every attached scope. The flip itself cannot fail; the returned error only
// reports scopes that rejected a write.
func (p *Provider) Toggle() (Theme, error) {
	p.mu.Lock()
	p.active = p.active.Other()
	name := p.active
	scopes := append([]Scope(nil), p.scopes...)
	p.mu.Unlock()

	t, _ := Lookup(name)
	p.log.WithFields(map[string]any{"theme": string(name), "scopes": len(scopes)}).Info("theme toggled")

	var errs []error
	for _, scope := range scopes {
		if err := Export(scope, t); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		p.log.Error(err, "theme export failed")
	}
	return t, err
}

type providerKey struct{}

// NewContext returns a child context carrying p.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider attached to ctx, or ErrNoProvider.
func FromContext(ctx context.Context) (*Provider, error) {
	if ctx == nil {
		return nil, ErrNoProvider
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// MustFromContext is FromContext for call sites where a missing provider is
// a wiring bug; it panics with ErrNoProvider.
func MustFromContext(ctx context.Context) *Provider {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
