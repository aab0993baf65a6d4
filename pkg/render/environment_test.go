package render_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/daizutabi/textconf/pkg/render"
	"github.com/daizutabi/textconf/pkg/testsupport"
)

// filteredConfig installs a custom filter and a callable global before its
// template compiles.
type filteredConfig struct {
	A float64 `json:"a"`
}

func (c filteredConfig) SetEnvironment(env *render.Environment) error {
	err := env.RegisterFilter("shift", func(in, param any) (any, error) {
		x := pongo2.AsValue(in).Float()
		shift := 1.0
		if param != nil {
			shift = pongo2.AsValue(param).Float()
		}
		return x + shift, nil
	})
	if err != nil {
		return err
	}
	env.AddGlobal("double", func(args ...*pongo2.Value) *pongo2.Value {
		return pongo2.AsValue(args[0].Float() * 2)
	})
	return nil
}

type failingEnvConfig struct{}

func (failingEnvConfig) TemplateRef() string { return "unused.tmpl" }

func (failingEnvConfig) SetEnvironment(env *render.Environment) error {
	return errors.New("broken environment")
}

func TestEnvironmentFilterAndGlobal(t *testing.T) {
	out, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "{{ a|shift }}:{{ a|shift:5 }}:{{ double(a) }}",
		Config: filteredConfig{A: 10},
	})
	if err != nil {
		t.Fatalf("render with environment hook: %v", err)
	}
	if want := "11.0:15.0:20.0"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestEnvironmentRepeatedRegistration(t *testing.T) {
	// Filter names are global to the engine, so a second renderer running the
	// same hook must replace the registration instead of failing.
	req := render.Request{Text: "{{ a|shift }}", Config: filteredConfig{A: 1}}

	first, err := render.New().Render(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := render.New().Render(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("renders diverged\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestEnvironmentHookFailure(t *testing.T) {
	_, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "x",
		Config: failingEnvConfig{},
	})
	if err == nil {
		t.Fatal("want error from failing environment hook")
	}
	if !strings.Contains(err.Error(), "broken environment") {
		t.Fatalf("error mismatch, got %v", err)
	}
}

func TestEnvironmentFilterError(t *testing.T) {
	cfg := erroringFilterConfig{}

	_, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "{{ 1|explode }}",
		Config: cfg,
	})
	if err == nil {
		t.Fatal("want error from failing filter")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error mismatch, got %v", err)
	}
}

type erroringFilterConfig struct{}

func (erroringFilterConfig) SetEnvironment(env *render.Environment) error {
	return env.RegisterFilter("explode", func(in, param any) (any, error) {
		return nil, errors.New("boom")
	})
}
