package render_test

import (
	"context"
	"embed"
	"strings"
	"testing"

	"github.com/daizutabi/textconf/pkg/render"
	"github.com/daizutabi/textconf/pkg/testsupport"
)

//go:embed testdata
var templatesFS embed.FS

type BaseFields struct {
	Template string `json:"-"`
	Env      string `json:"env"`
}

type ServerFields struct {
	BaseFields
	Host string `json:"host"`
	Env  string `json:"env"`
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	file := testsupport.WriteTemplate(t, dir, "greeting.tmpl", "Hello {{ name }}!")

	out, err := render.New().Render(testsupport.Context(), render.Request{
		File:   file,
		Params: map[string]any{"name": "ops"},
	})
	if err != nil {
		t.Fatalf("render template file: %v", err)
	}
	if want := "Hello ops!"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderText(t *testing.T) {
	out, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "{{ greeting }}, {{ name }}",
		Params: map[string]any{"greeting": "hi", "name": "ops"},
	})
	if err != nil {
		t.Fatalf("render inline template: %v", err)
	}
	if want := "hi, ops"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderPrecedence(t *testing.T) {
	cases := []struct {
		name string
		req  render.Request
		want string
	}{
		{
			name: "params shadow fields and fragments",
			req: render.Request{
				Text:      "{{x}}",
				Fragments: []render.Fragment{render.Values{"x": 1}},
				Config: struct {
					X int `json:"x"`
				}{X: 2},
				Params: map[string]any{"x": 3},
			},
			want: "3",
		},
		{
			name: "fields shadow fragments",
			req: render.Request{
				Text:      "{{x}}",
				Fragments: []render.Fragment{render.Values{"x": 1}},
				Config: struct {
					X int `json:"x"`
				}{X: 2},
			},
			want: "2",
		},
		{
			name: "fragments apply in order",
			req: render.Request{
				Text:      "{{x}}",
				Fragments: []render.Fragment{render.Values{"x": 1}, render.Values{"x": 9}},
			},
			want: "9",
		},
		{
			name: "object fragment fields",
			req: render.Request{
				Text: "{{region}}",
				Fragments: []render.Fragment{render.Object{Value: struct {
					Region string `json:"region"`
				}{Region: "us-east"}}},
			},
			want: "us-east",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := render.New().Render(testsupport.Context(), tc.req)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out != tc.want {
				t.Fatalf("render output mismatch\nwant: %q\n got: %q", tc.want, out)
			}
		})
	}
}

func TestRenderNumericForms(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int stays int", value: 7, want: "7"},
		{name: "float keeps one decimal", value: 11.0, want: "11.0"},
		{name: "float trims trailing zeros", value: 1.2345, want: "1.2345"},
		{name: "small float expands", value: 1.234e-9, want: "0.00000000123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := render.New().Render(testsupport.Context(), render.Request{
				Text:   "{{x}}",
				Params: map[string]any{"x": tc.value},
			})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out != tc.want {
				t.Fatalf("numeric form mismatch\nwant: %q\n got: %q", tc.want, out)
			}
		})
	}
}

func TestRenderEmbeddedFields(t *testing.T) {
	cfg := ServerFields{
		BaseFields: BaseFields{Template: "ignored.tmpl", Env: "base"},
		Host:       "localhost",
		Env:        "prod",
	}

	out, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "[{{Template}}] {{env}} {{host}}",
		Config: cfg,
	})
	if err != nil {
		t.Fatalf("render embedded fields: %v", err)
	}
	if want := "[] prod localhost"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderMapConfig(t *testing.T) {
	out, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "{{host}}:{{port}}",
		Config: map[string]any{"host": "localhost", "port": 8080},
	})
	if err != nil {
		t.Fatalf("render map config: %v", err)
	}
	if want := "localhost:8080"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderWithFS(t *testing.T) {
	renderer := render.New(render.WithFS(templatesFS))

	out, err := renderer.Render(testsupport.Context(), render.Request{
		File:   "testdata/greeting.tmpl",
		Params: map[string]any{"name": "ops"},
	})
	if err != nil {
		t.Fatalf("render embedded template: %v", err)
	}
	if want := "Hello ops!"; out != want {
		t.Fatalf("render output mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	_, err := render.New().Render(testsupport.Context(), render.Request{
		File: "/nonexistent/missing.tmpl",
	})
	if err == nil {
		t.Fatal("want error for missing template file")
	}
	if !strings.Contains(err.Error(), "load template") {
		t.Fatalf("error mismatch, got %v", err)
	}
}

func TestRenderRequiresSource(t *testing.T) {
	if _, err := render.New().Render(testsupport.Context(), render.Request{}); err == nil {
		t.Fatal("want error when neither file nor text is given")
	}
}

func TestRenderRequiresContext(t *testing.T) {
	var nilCtx context.Context
	if _, err := render.New().Render(nilCtx, render.Request{Text: "x"}); err == nil {
		t.Fatal("want error for nil context")
	}
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.New().Render(ctx, render.Request{Text: "x"})
	if err == nil {
		t.Fatal("want error for canceled context")
	}
	if !strings.Contains(err.Error(), "context canceled") {
		t.Fatalf("error mismatch, got %v", err)
	}
}

func TestRenderUnsupportedConfig(t *testing.T) {
	_, err := render.New().Render(testsupport.Context(), render.Request{
		Text:   "x",
		Config: 42,
	})
	if err == nil {
		t.Fatal("want error for unsupported configuration type")
	}
	if !strings.Contains(err.Error(), "unsupported configuration type") {
		t.Fatalf("error mismatch, got %v", err)
	}
}
