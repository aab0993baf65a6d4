package config

import "fmt"

// Method is a named value extractor evaluated against a configuration just
// before rendering. The result is stored in the render context under Name.
type Method struct {
	Name string
	Call func(Config) (any, error)
}

// MethodProvider is implemented by configurations that declare template
// methods. Declaration order is evaluation order.
type MethodProvider interface {
	TemplateMethods() []Method
}

// MethodsOf returns cfg's declared template methods, or nil when cfg does
// not declare any. It never invokes the extractors.
func MethodsOf(cfg Config) []Method {
	provider, ok := cfg.(MethodProvider)
	if !ok {
		return nil
	}
	return provider.TemplateMethods()
}

// ApplyMethods evaluates cfg's template methods into params. Existing keys
// are never overwritten, so explicit parameters always shadow declared
// methods of the same name. Methods with a blank name or a nil Call are
// skipped; the first extractor failure aborts.
func ApplyMethods(cfg Config, params map[string]any) error {
	for _, method := range MethodsOf(cfg) {
		if method.Name == "" || method.Call == nil {
			continue
		}
		if _, ok := params[method.Name]; ok {
			continue
		}
		value, err := method.Call(cfg)
		if err != nil {
			return fmt.Errorf("config: template method %s: %w", method.Name, err)
		}
		params[method.Name] = value
	}
	return nil
}
