// Package variant dispatches rendering by name through an explicit registry,
// so a value naming a variant can pick its renderable at call time.
package variant

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/daizutabi/textconf/pkg/config"
)

// Renderable renders a configuration into text.
type Renderable interface {
	Render(ctx context.Context, cfg config.Config) (string, error)
}

// RenderFunc adapts a function to the Renderable interface.
type RenderFunc func(ctx context.Context, cfg config.Config) (string, error)

// Render implements Renderable.
func (f RenderFunc) Render(ctx context.Context, cfg config.Config) (string, error) {
	return f(ctx, cfg)
}

// Registry stores renderables by variant name, providing discovery and
// duplication safeguards. There is no package-level default instance;
// callers own their registries.
type Registry struct {
	mu          sync.RWMutex
	renderables map[string]Renderable
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderables: make(map[string]Renderable),
	}
}

// Register adds a renderable under name. Duplicate names return an error.
func (r *Registry) Register(name string, renderable Renderable) error {
	if renderable == nil {
		return fmt.Errorf("variant: renderable is required")
	}
	if name == "" {
		return fmt.Errorf("variant: name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderables[name]; exists {
		return fmt.Errorf("variant: renderable %q already registered", name)
	}

	r.renderables[name] = renderable
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, renderable Renderable) {
	if err := r.Register(name, renderable); err != nil {
		panic(err)
	}
}

// Get retrieves the renderable registered under name.
func (r *Registry) Get(name string) (Renderable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderable, ok := r.renderables[name]
	if !ok {
		return nil, fmt.Errorf("variant: no renderable registered for %q", name)
	}
	return renderable, nil
}

// List returns the registered variant names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderables))
	for name := range r.renderables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderable is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderables[name]
	return ok
}

// Render dispatches cfg to the renderable registered under name.
func (r *Registry) Render(ctx context.Context, name string, cfg config.Config) (string, error) {
	renderable, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return renderable.Render(ctx, cfg)
}

// Variant returns a named handle bound to this registry.
func (r *Registry) Variant(name string) Variant {
	return Variant{name: name, registry: r}
}

// Variant is a name bound to a registry. Its Render looks the renderable up
// at call time, so registrations made after the Variant was created are
// honored and removals surface as lookup errors.
type Variant struct {
	name     string
	registry *Registry
}

// Name reports the variant's name.
func (v Variant) Name() string { return v.name }

// Render dispatches through the variant's registry.
func (v Variant) Render(ctx context.Context, cfg config.Config) (string, error) {
	if v.registry == nil {
		return "", fmt.Errorf("variant: no renderable registered for %q", v.name)
	}
	return v.registry.Render(ctx, v.name, cfg)
}
