// Package render executes pongo2 templates against contexts assembled from
// configuration fields, context fragments, and explicit parameters.
package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
)

// Renderer wraps a pongo2 template set. A fresh Renderer per render keeps
// environments fully isolated; a shared one keeps its globals across calls.
type Renderer struct {
	set *pongo2.TemplateSet
	env *Environment
}

type config struct {
	fsys fs.FS
}

// Option configures a Renderer.
type Option func(*config)

// WithFS serves templates from fsys instead of the local filesystem.
// Template file paths are then interpreted relative to the fsys root.
func WithFS(fsys fs.FS) Option {
	return func(c *config) { c.fsys = fsys }
}

// New returns a Renderer backed by a fresh template set. The default loader
// reads from the local filesystem and accepts absolute paths.
func New(options ...Option) *Renderer {
	var cfg config
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	var loader pongo2.TemplateLoader
	if cfg.fsys != nil {
		loader = pongo2.NewFSLoader(cfg.fsys)
	} else {
		loader = pongo2.MustNewLocalFileSystemLoader("")
	}
	set := pongo2.NewSet("textconf", loader)
	return &Renderer{set: set, env: &Environment{set: set}}
}

// Environment returns the renderer's registration surface for filters and
// globals.
func (r *Renderer) Environment() *Environment { return r.env }

// Request describes one rendering operation.
type Request struct {
	// File is the path of the template to load, as produced by the resolver.
	File string
	// Text is inline template source, used when File is empty.
	Text string
	// Config contributes its exported fields to the render context and may
	// implement EnvironmentSetter.
	Config any
	// Fragments supply low-precedence context values, applied in order.
	Fragments []Fragment
	// Params are explicit values with the highest precedence.
	Params map[string]any
}

// Render executes the template described by req and returns its output.
// Context precedence, lowest to highest: fragments in order, then the
// configuration's fields, then explicit params. The configuration's
// SetEnvironment hook runs before the template is compiled so that custom
// filters are visible to the parser.
func (r *Renderer) Render(ctx context.Context, req Request) (string, error) {
	if ctx == nil {
		return "", errors.New("render: context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if req.File == "" && req.Text == "" {
		return "", errors.New("render: template file or text is required")
	}

	if setter, ok := req.Config.(EnvironmentSetter); ok {
		if err := setter.SetEnvironment(r.env); err != nil {
			return "", fmt.Errorf("render: set environment: %w", err)
		}
	}

	templateContext, err := buildContext(req)
	if err != nil {
		return "", fmt.Errorf("render: build context: %w", err)
	}

	var template *pongo2.Template
	if req.File != "" {
		template, err = r.set.FromFile(req.File)
		if err != nil {
			return "", fmt.Errorf("render: load template %s: %w", req.File, err)
		}
	} else {
		template, err = r.set.FromString(req.Text)
		if err != nil {
			return "", fmt.Errorf("render: parse template: %w", err)
		}
	}

	out, err := template.Execute(templateContext)
	if err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return out, nil
}
