// Package testsupport provides shared helpers for template and configuration
// tests: fixture templates, working directory switching, and render
// assertions.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daizutabi/textconf/pkg/config"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// WriteTemplate writes a template fixture under dir, creating intermediate
// directories, and returns its path.
func WriteTemplate(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir template dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write template %s: %v", name, err)
	}
	return path
}

// Chdir switches the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("read working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("switch working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

// RenderContains renders cfg and fails unless the output contains want.
func RenderContains(t *testing.T, cfg config.Config, want string, options ...config.Option) {
	t.Helper()

	got, err := config.Render(Context(), cfg, options...)
	if err != nil {
		t.Fatalf("render configuration: %v", err)
	}
	if !strings.Contains(got, want) {
		t.Fatalf("render output mismatch\nwant substring: %q\n           got: %q", want, got)
	}
}

// MustReadGolden reads a golden file and returns its string content.
func MustReadGolden(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data string) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
