package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// settingsFile is discovered by walking from the working directory toward
// the filesystem root, so nested project directories share one file.
const settingsFile = ".textconf.yaml"

// Settings are CLI defaults read from the nearest settings file. Explicit
// flags override them.
type Settings struct {
	Dir    string   `yaml:"dir"`
	Values []string `yaml:"values"`
}

func loadSettings() (Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Settings{}, fmt.Errorf("cli: read working directory: %w", err)
	}
	path, ok := findSettings(wd)
	if !ok {
		return Settings{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("cli: read settings %s: %w", path, err)
	}
	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("cli: parse settings %s: %w", path, err)
	}
	// Values paths are relative to the settings file, not the working
	// directory.
	base := filepath.Dir(path)
	for i, value := range settings.Values {
		if !filepath.IsAbs(value) {
			settings.Values[i] = filepath.Join(base, value)
		}
	}
	return settings, nil
}

func findSettings(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, settingsFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
