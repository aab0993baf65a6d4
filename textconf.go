package textconf

import (
	"context"

	"github.com/daizutabi/textconf/pkg/config"
	"github.com/daizutabi/textconf/pkg/render"
	"github.com/daizutabi/textconf/pkg/resolve"
)

// Config is the contract renderable configurations satisfy; alias exported
// via the root package for convenience.
type Config = config.Config

// Base is the embeddable default configuration.
type Base = config.Base

// Method is a named template method declaration.
type Method = config.Method

// MethodProvider is implemented by configurations declaring template methods.
type MethodProvider = config.MethodProvider

// Updater is the pre-render adjustment hook.
type Updater = config.Updater

// Option adjusts a single render call.
type Option = config.Option

// Values is a literal context fragment.
type Values = render.Values

// Object is a context fragment contributing a struct's exported fields.
type Object = render.Object

// Environment registers custom filters and globals for a render.
type Environment = render.Environment

// EnvironmentSetter is implemented by configurations that install custom
// filters or globals before their template compiles.
type EnvironmentSetter = render.EnvironmentSetter

// FilterFunc is the plain-Go form of a template filter.
type FilterFunc = render.FilterFunc

// NotFoundError reports an exhausted template search.
type NotFoundError = resolve.NotFoundError

// Render runs cfg through the full lifecycle and returns the rendered text.
// It is the simplest entry point for callers that own a configuration value.
func Render(ctx context.Context, cfg Config, options ...Option) (string, error) {
	return config.Render(ctx, cfg, options...)
}

// NewBase returns a Base whose template search is anchored at the calling
// source file's directory, so bare template names resolve next to the file
// that defines the configuration.
func NewBase(template string) Base {
	return config.NewBaseAt(template, resolve.CallerDir(1))
}

// NewBaseAt returns a Base anchored at an explicit directory.
func NewBaseAt(template, anchor string) Base {
	return config.NewBaseAt(template, anchor)
}

// WithDir names a subdirectory searched before bare template names.
func WithDir(dir string) Option {
	return config.WithDir(dir)
}

// WithValues merges a literal map into the render context at fragment
// precedence.
func WithValues(values Values) Option {
	return config.WithValues(values)
}

// WithObject merges the exported fields of value into the render context at
// fragment precedence.
func WithObject(value any) Option {
	return config.WithObject(value)
}

// WithParam sets one explicit parameter, shadowing template methods of the
// same name.
func WithParam(name string, value any) Option {
	return config.WithParam(name, value)
}

// WithParams sets several explicit parameters at once.
func WithParams(params map[string]any) Option {
	return config.WithParams(params)
}

// WithRenderer renders through a caller-owned engine instead of a fresh one.
func WithRenderer(r *render.Renderer) Option {
	return config.WithRenderer(r)
}
