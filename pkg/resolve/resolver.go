// Package resolve locates template files on a layered search path: the
// working directory first, then the directory anchoring the configuration,
// then each of that directory's ancestors.
package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

type config struct {
	dir string
}

// Option configures a resolution.
type Option func(*config)

// WithDir names a subdirectory that each candidate directory is joined with
// before the reference itself.
func WithDir(dir string) Option {
	return func(c *config) { c.dir = dir }
}

// Anchored is implemented by configurations that carry their own search
// anchor directory.
type Anchored interface {
	TemplateAnchor() string
}

// Resolve locates the template file named by reference and returns its
// absolute path.
//
// References that point at an existing file on their own short-circuit the
// search: absolute paths are checked directly, relative ones against the
// working directory (joined with the WithDir subdirectory when one is given).
// Bare names that match nothing there are searched next to anchor and then in
// each ancestor of anchor up to the filesystem root, honoring WithDir at
// every step. An empty anchor limits the search to the working directory.
func Resolve(anchor, reference string, options ...Option) (string, error) {
	var cfg config
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if reference == "" {
		return "", errors.New("resolve: reference is required")
	}

	if filepath.IsAbs(reference) {
		if fileExists(reference) {
			return filepath.Clean(reference), nil
		}
		return "", &NotFoundError{Reference: reference, Searched: []string{filepath.Clean(reference)}}
	}

	var searched []string

	candidate := reference
	if cfg.dir != "" {
		candidate = filepath.Join(cfg.dir, reference)
	}
	if fileExists(candidate) {
		return absPath(candidate), nil
	}
	searched = append(searched, absPath(candidate))

	if anchor != "" {
		dir := absPath(anchor)
		for {
			candidate := filepath.Join(dir, cfg.dir, reference)
			if fileExists(candidate) {
				return candidate, nil
			}
			searched = append(searched, candidate)
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", &NotFoundError{Reference: reference, Searched: searched}
}

// CallerDir reports the directory holding the source file of the calling
// function. skip counts additional stack frames to ascend, with 0 meaning the
// immediate caller of CallerDir. The empty string is returned when the caller
// cannot be determined.
func CallerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return ""
	}
	return filepath.Dir(file)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
