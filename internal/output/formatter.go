// Package output renders CLI feedback. Status messages go to stderr so that
// rendered payloads on stdout stay pipeable; tables and JSON go to the
// writer the command hands in.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// JSON writes data as indented JSON.
func JSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table writes a formatted table.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := make([]string, len(headers))
	for i, h := range headers {
		headerLine[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	fmt.Fprintln(w, strings.Join(headerLine, "  "))

	sepLine := make([]string, len(headers))
	for i, width := range widths {
		sepLine[i] = strings.Repeat("-", width)
	}
	fmt.Fprintln(w, strings.Join(sepLine, "  "))

	for _, row := range rows {
		rowLine := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowLine[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.Join(rowLine, "  "))
	}
}

// Success prints a success message.
func Success(format string, args ...any) {
	_, _ = successColor.Fprintf(color.Error, "✓ "+format+"\n", args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	_, _ = errorColor.Fprintf(color.Error, "✗ "+format+"\n", args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	_, _ = warnColor.Fprintf(color.Error, "! "+format+"\n", args...)
}

// Info prints an info message.
func Info(format string, args ...any) {
	_, _ = infoColor.Fprintf(color.Error, "→ "+format+"\n", args...)
}
