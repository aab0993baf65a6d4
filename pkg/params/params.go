// Package params parses parameter declarations embedded in template text.
// A declaration is a single-brace span of the form {name=default} or
// {name:format=default}; doubled braces escape, and spans containing spaces
// or newlines are ignored.
package params

import (
	"fmt"
	"strings"
)

// Param is one parameter declaration.
type Param struct {
	Name    string
	Format  string
	Default string
}

// ParseParam parses a single brace-enclosed declaration.
func ParseParam(s string) (Param, error) {
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Param{}, fmt.Errorf("params: declaration %q must be enclosed in braces", s)
	}
	body := s[1 : len(s)-1]

	parts := strings.Split(body, "=")
	if len(parts) != 2 {
		return Param{}, fmt.Errorf("params: declaration %q must contain exactly one '='", s)
	}
	if parts[1] == "" {
		return Param{}, fmt.Errorf("params: declaration %q has an empty default", s)
	}

	name := parts[0]
	format := ""
	if nameParts := strings.Split(parts[0], ":"); len(nameParts) == 2 {
		name = nameParts[0]
		format = nameParts[1]
	}
	if name == "" {
		return Param{}, fmt.Errorf("params: declaration %q has an empty name", s)
	}
	return Param{Name: name, Format: format, Default: parts[1]}, nil
}

// String renders the declaration in its source form, so that String on a
// parsed declaration reproduces the span it came from.
func (p Param) String() string {
	if p.Format != "" {
		return fmt.Sprintf("{%s:%s=%s}", p.Name, p.Format, p.Default)
	}
	return fmt.Sprintf("{%s=%s}", p.Name, p.Default)
}

// Placeholder renders the declaration with its default removed.
func (p Param) Placeholder() string {
	if p.Format != "" {
		return fmt.Sprintf("{%s:%s}", p.Name, p.Format)
	}
	return fmt.Sprintf("{%s}", p.Name)
}

// Kind infers the parameter's kind from its default text.
func (p Param) Kind() Kind { return KindOf(p.Default) }

// Value converts the default text into its Go value per the inferred kind.
func (p Param) Value() any { return ValueOf(p.Default) }

// List is an ordered set of parameter declarations.
type List []Param

// Parse scans text for parameter declarations in order of appearance.
// Malformed spans are skipped; duplicate names are an error.
func Parse(text string) (List, error) {
	var list List
	seen := map[string]bool{}
	for _, span := range braceSpans(text) {
		param, err := ParseParam(span)
		if err != nil {
			continue
		}
		if seen[param.Name] {
			return nil, fmt.Errorf("params: duplicate parameter %q", param.Name)
		}
		seen[param.Name] = true
		list = append(list, param)
	}
	return list, nil
}

// Strip rewrites every declaration in text to its placeholder form, leaving
// the rest of the text untouched.
func (l List) Strip(text string) string {
	for _, param := range l {
		text = strings.ReplaceAll(text, param.String(), param.Placeholder())
	}
	return text
}

// Names returns the declared names in order.
func (l List) Names() []string {
	names := make([]string, len(l))
	for i, param := range l {
		names[i] = param.Name
	}
	return names
}

// Defaults returns each parameter's typed default keyed by name.
func (l List) Defaults() map[string]any {
	defaults := make(map[string]any, len(l))
	for _, param := range l {
		defaults[param.Name] = param.Value()
	}
	return defaults
}

// braceSpans returns candidate single-brace spans in order. A doubled brace
// escapes, a space or newline aborts the open span, and nested braces keep
// the innermost span.
func braceSpans(text string) []string {
	var spans []string
	start := -1
	var prev rune
	for i, c := range text {
		switch c {
		case '{':
			if prev == '{' {
				start = -1
				prev = 0
				continue
			}
			start = i
			prev = c
		case '}':
			if start >= 0 {
				spans = append(spans, text[start:i+1])
			}
			start = -1
			prev = 0
		case ' ', '\n':
			start = -1
			prev = 0
		default:
			if start >= 0 {
				prev = c
			}
		}
	}
	return spans
}
