package cli

import (
	"strings"
	"testing"
)

// resetFlags restores command flag state between tests.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		flagDir = ""
		flagAnchor = ""
		renderValues = nil
		renderSets = nil
		renderOut = ""
		renderPrompt = false
		renderStdin = false
		paramsStrip = false
		paramsJSON = false
	}
	reset()
	t.Cleanup(reset)
}

// stubDriver answers prompts from canned values, falling back to the
// declared default when a name has no entry.
type stubDriver struct {
	inputs   map[string]string
	confirms map[string]bool
}

func (d stubDriver) Input(message, fallback string) (string, error) {
	for name, answer := range d.inputs {
		if strings.HasPrefix(message, name+" ") {
			return answer, nil
		}
	}
	return fallback, nil
}

func (d stubDriver) Confirm(message string, fallback bool) (bool, error) {
	for name, answer := range d.confirms {
		if strings.HasPrefix(message, name+" ") {
			return answer, nil
		}
	}
	return fallback, nil
}

// swapPrompter installs driver for the duration of the test.
func swapPrompter(t *testing.T, driver PromptDriver) {
	t.Helper()
	old := prompter
	prompter = driver
	t.Cleanup(func() { prompter = old })
}
