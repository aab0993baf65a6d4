package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadValuesFiles decodes each YAML file and merges the documents in order,
// later files overriding earlier ones.
func loadValuesFiles(paths []string) (map[string]any, error) {
	merged := map[string]any{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cli: read values %s: %w", path, err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("cli: parse values %s: %w", path, err)
		}
		for name, value := range doc {
			merged[name] = value
		}
	}
	return merged, nil
}

// parseSets decodes --set overrides. Values go through the YAML scalar
// parser so numbers and booleans arrive typed.
func parseSets(sets []string) (map[string]any, error) {
	parsed := make(map[string]any, len(sets))
	for _, set := range sets {
		name, raw, ok := strings.Cut(set, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("cli: invalid --set %q, want name=value", set)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("cli: invalid --set %q: %w", set, err)
		}
		parsed[name] = value
	}
	return parsed, nil
}
