package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStatus captures the stderr status stream during function execution
func captureStatus(f func()) string {
	old := color.Error
	buf := &bytes.Buffer{}
	color.Error = buf

	f()

	color.Error = old
	return buf.String()
}

func TestJSON(t *testing.T) {
	t.Run("struct slice", func(t *testing.T) {
		type entry struct {
			Name    string `json:"name"`
			Default string `json:"default"`
		}
		data := []entry{{Name: "port", Default: "8080"}}

		buf := &bytes.Buffer{}
		if err := JSON(buf, data); err != nil {
			t.Fatalf("encode: %v", err)
		}

		var result []entry
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}
		if len(result) != 1 || result[0].Name != "port" {
			t.Errorf("unexpected decoded output: %+v", result)
		}
	})

	t.Run("indented", func(t *testing.T) {
		buf := &bytes.Buffer{}
		if err := JSON(buf, map[string]string{"a": "b"}); err != nil {
			t.Fatalf("encode: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  ") {
			t.Errorf("expected indented output, got %q", buf.String())
		}
	})
}

func TestTable(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		headers := []string{"NAME", "KIND"}
		rows := [][]string{
			{"port", "int"},
			{"debug", "bool"},
		}

		buf := &bytes.Buffer{}
		Table(buf, headers, rows)

		for _, want := range []string{"NAME", "KIND", "port", "debug", "----"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output should contain %q:\n%s", want, buf.String())
			}
		}
	})

	t.Run("empty headers", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Table(buf, nil, [][]string{{"data"}})

		if buf.String() != "" {
			t.Errorf("expected no output for empty headers, got %s", buf.String())
		}
	})

	t.Run("empty rows", func(t *testing.T) {
		buf := &bytes.Buffer{}
		Table(buf, []string{"COL1", "COL2"}, nil)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Errorf("expected 2 lines (header + separator), got %d", len(lines))
		}
	})

	t.Run("uneven columns", func(t *testing.T) {
		headers := []string{"COL1", "COL2", "COL3"}
		rows := [][]string{
			{"a", "b"},           // missing COL3
			{"x", "y", "z", "w"}, // extra column (should be ignored)
		}

		buf := &bytes.Buffer{}
		Table(buf, headers, rows)

		if !strings.Contains(buf.String(), "a") {
			t.Error("output should contain value a")
		}
		if strings.Contains(buf.String(), "w") {
			t.Error("extra column should be ignored")
		}
	})
}

func TestStatusMessages(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := captureStatus(func() {
			Success("rendered %s", "app.conf")
		})
		if !strings.Contains(out, "✓ rendered app.conf") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("error", func(t *testing.T) {
		out := captureStatus(func() {
			Error("render failed: %s", "template missing")
		})
		if !strings.Contains(out, "✗ render failed: template missing") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("warn", func(t *testing.T) {
		out := captureStatus(func() {
			Warn("found %d issues", 5)
		})
		if !strings.Contains(out, "! found 5 issues") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("info", func(t *testing.T) {
		out := captureStatus(func() {
			Info("searched %s", "/etc/conf")
		})
		if !strings.Contains(out, "→ searched /etc/conf") {
			t.Errorf("unexpected output %q", out)
		}
	})
}
