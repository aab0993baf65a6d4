package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/daizutabi/textconf/pkg/render"
	"github.com/daizutabi/textconf/pkg/resolve"
)

type settings struct {
	dir       string
	fragments []render.Fragment
	params    map[string]any
	renderer  *render.Renderer
}

// Option adjusts a single render call.
type Option func(*settings)

// WithDir names a subdirectory that is searched before bare template names
// during resolution.
func WithDir(dir string) Option {
	return func(s *settings) { s.dir = dir }
}

// WithValues merges a literal map into the render context at fragment
// precedence, below configuration fields.
func WithValues(values render.Values) Option {
	return func(s *settings) { s.fragments = append(s.fragments, values) }
}

// WithObject merges the exported fields of value into the render context at
// fragment precedence, below configuration fields.
func WithObject(value any) Option {
	return func(s *settings) { s.fragments = append(s.fragments, render.Object{Value: value}) }
}

// WithParam sets one explicit parameter. Explicit parameters have the
// highest precedence and shadow template methods of the same name.
func WithParam(name string, value any) Option {
	return func(s *settings) {
		if s.params == nil {
			s.params = map[string]any{}
		}
		s.params[name] = value
	}
}

// WithParams sets several explicit parameters at once.
func WithParams(params map[string]any) Option {
	return func(s *settings) {
		if s.params == nil {
			s.params = map[string]any{}
		}
		for name, value := range params {
			s.params[name] = value
		}
	}
}

// WithRenderer renders through a caller-owned engine instead of a fresh one,
// keeping that engine's globals and loader configuration.
func WithRenderer(r *render.Renderer) Option {
	return func(s *settings) { s.renderer = r }
}

// Render runs cfg through the full lifecycle: the Update hook, template
// method evaluation, template resolution, and template execution. Each call
// starts from scratch, so changed declarations or files are observed fresh
// and nothing is cached between renders.
func Render(ctx context.Context, cfg Config, options ...Option) (string, error) {
	if ctx == nil {
		return "", errors.New("config: context is required")
	}
	if cfg == nil {
		return "", errors.New("config: configuration is required")
	}
	var s settings
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}

	if updater, ok := cfg.(Updater); ok {
		if err := updater.Update(); err != nil {
			return "", fmt.Errorf("config: update: %w", err)
		}
	}

	params := make(map[string]any, len(s.params))
	for name, value := range s.params {
		params[name] = value
	}
	if err := ApplyMethods(cfg, params); err != nil {
		return "", err
	}

	var anchor string
	if anchored, ok := cfg.(resolve.Anchored); ok {
		anchor = anchored.TemplateAnchor()
	}
	var resolveOptions []resolve.Option
	if s.dir != "" {
		resolveOptions = append(resolveOptions, resolve.WithDir(s.dir))
	}
	file, err := resolve.Resolve(anchor, cfg.TemplateRef(), resolveOptions...)
	if err != nil {
		return "", err
	}

	renderer := s.renderer
	if renderer == nil {
		renderer = render.New()
	}
	return renderer.Render(ctx, render.Request{
		File:      file,
		Config:    cfg,
		Fragments: s.fragments,
		Params:    params,
	})
}
