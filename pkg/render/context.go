package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Fragment contributes values to a render context. Values supplies a literal
// map, Object the exported fields of an arbitrary struct.
type Fragment interface {
	apply(target pongo2.Context) error
}

// Values is a literal context fragment.
type Values map[string]any

func (v Values) apply(target pongo2.Context) error {
	for name, value := range v {
		target[name] = value
	}
	return nil
}

// Object contributes the exported fields of an arbitrary value, flattened
// the same way the configuration's own fields are.
type Object struct {
	Value any
}

func (o Object) apply(target pongo2.Context) error {
	fields, err := fieldsOf(o.Value)
	if err != nil {
		return err
	}
	for name, value := range fields {
		target[name] = value
	}
	return nil
}

func buildContext(req Request) (pongo2.Context, error) {
	target := pongo2.Context{}
	for _, fragment := range req.Fragments {
		if fragment == nil {
			continue
		}
		if err := fragment.apply(target); err != nil {
			return nil, err
		}
	}
	fields, err := fieldsOf(req.Config)
	if err != nil {
		return nil, err
	}
	for name, value := range fields {
		target[name] = value
	}
	for name, value := range req.Params {
		target[name] = value
	}
	return target, nil
}

// fieldsOf flattens a configuration value into context entries. Maps pass
// through, structs contribute their exported fields with embedded structs
// promoted and json tags honored, nil contributes nothing. Values keep their
// native Go types so the engine's own per-type formatting applies.
func fieldsOf(v any) (map[string]any, error) {
	out := map[string]any{}
	if v == nil {
		return out, nil
	}
	switch src := v.(type) {
	case pongo2.Context:
		for name, value := range src {
			out[name] = value
		}
		return out, nil
	case map[string]any:
		for name, value := range src {
			out[name] = value
		}
		return out, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return out, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported configuration type %T", v)
	}
	collectFields(rv, out)
	return out, nil
}

// collectFields walks rv in declaration order. Later fields shadow earlier
// ones, so fields declared after an embedded struct win over the promoted
// ones.
func collectFields(rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		value := rv.Field(i)
		if field.Anonymous {
			elem := value
			nilEmbed := false
			for elem.Kind() == reflect.Pointer {
				if elem.IsNil() {
					nilEmbed = true
					break
				}
				elem = elem.Elem()
			}
			if nilEmbed {
				continue
			}
			if elem.Kind() == reflect.Struct {
				collectFields(elem, out)
				continue
			}
		}
		name, ok := contextName(field)
		if !ok {
			continue
		}
		out[name] = value.Interface()
	}
}

func contextName(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		return field.Name, true
	}
	return name, true
}
