// Package config defines the configuration contract and the render lifecycle
// that binds configurations to their templates: the update hook, template
// method evaluation, template resolution, and template execution.
package config

import (
	"github.com/daizutabi/textconf/pkg/resolve"
)

// Config is the minimal contract a renderable configuration satisfies.
type Config interface {
	// TemplateRef names the template file, either as an explicit path or as
	// a bare name located through the search path.
	TemplateRef() string
}

// Updater is implemented by configurations that adjust themselves before
// each render. A failure aborts the render.
type Updater interface {
	Update() error
}

// Base is the embeddable default configuration. It carries the template
// reference and the directory the search is anchored at. The template
// reference is excluded from the render context.
type Base struct {
	Template string `json:"-" yaml:"template"`

	anchor string
}

// NewBase returns a Base whose search anchor is the directory of the calling
// source file, so configurations resolve bare template names next to their
// own definition.
func NewBase(template string) Base {
	return Base{Template: template, anchor: resolve.CallerDir(1)}
}

// NewBaseAt returns a Base anchored at an explicit directory. An empty
// anchor limits resolution to the working directory.
func NewBaseAt(template, anchor string) Base {
	return Base{Template: template, anchor: anchor}
}

// TemplateRef implements Config.
func (b Base) TemplateRef() string { return b.Template }

// TemplateAnchor reports the directory anchoring the template search.
func (b Base) TemplateAnchor() string { return b.anchor }

// SetAnchor replaces the search anchor, for configurations constructed by
// decoding rather than NewBase.
func (b *Base) SetAnchor(anchor string) { b.anchor = anchor }
