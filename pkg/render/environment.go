package render

import (
	"errors"

	"github.com/flosch/pongo2/v6"
)

// FilterFunc is the plain-Go form of a template filter. in is the filtered
// value and param the optional filter argument, nil when absent.
type FilterFunc func(in any, param any) (any, error)

// Environment registers custom filters and globals for a renderer. It is
// handed to a configuration's SetEnvironment hook before the template is
// compiled, so registered filters are visible to the parser.
type Environment struct {
	set *pongo2.TemplateSet
}

// EnvironmentSetter is implemented by configurations that install custom
// filters or globals for their templates.
type EnvironmentSetter interface {
	SetEnvironment(env *Environment) error
}

// RegisterFilter installs fn under name. Filter names are global to the
// engine, so an existing registration is replaced rather than rejected,
// keeping repeated registrations from per-render hooks idempotent.
func (e *Environment) RegisterFilter(name string, fn FilterFunc) error {
	if name == "" {
		return errors.New("render: filter name is required")
	}
	if fn == nil {
		return errors.New("render: filter function is required")
	}
	wrapped := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		out, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(out), nil
	}
	if pongo2.FilterExists(name) {
		return pongo2.ReplaceFilter(name, wrapped)
	}
	return pongo2.RegisterFilter(name, wrapped)
}

// AddGlobal exposes value under name for every template of this renderer's
// set. Functions become callable from template expressions.
func (e *Environment) AddGlobal(name string, value any) {
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals[name] = value
}
