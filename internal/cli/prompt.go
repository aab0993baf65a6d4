package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/daizutabi/textconf/pkg/params"
)

// ErrPromptAborted reports an interrupted prompt session.
var ErrPromptAborted = errors.New("cli: prompt aborted")

// PromptDriver asks the user for parameter values.
type PromptDriver interface {
	Input(message, fallback string) (string, error)
	Confirm(message string, fallback bool) (bool, error)
}

// prompter is the package prompt driver (can be overridden for testing).
var prompter PromptDriver = surveyDriver{}

type surveyDriver struct{}

func (surveyDriver) Input(message, fallback string) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message, Default: fallback}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", translatePromptErr(err)
	}
	return answer, nil
}

func (surveyDriver) Confirm(message string, fallback bool) (bool, error) {
	answer := fallback
	prompt := &survey.Confirm{Message: message, Default: fallback}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, translatePromptErr(err)
	}
	return answer, nil
}

func translatePromptErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptAborted
	}
	return err
}

// promptParams asks for each declared parameter not in skip and returns the
// answers typed per the inferred kind.
func promptParams(driver PromptDriver, declared params.List, skip map[string]bool) (map[string]any, error) {
	answers := make(map[string]any, len(declared))
	for _, p := range declared {
		if skip[p.Name] {
			continue
		}
		message := fmt.Sprintf("%s (%s)", p.Name, p.Kind())
		if p.Kind() == params.KindBool {
			fallback := strings.EqualFold(p.Default, "true")
			answer, err := driver.Confirm(message, fallback)
			if err != nil {
				return nil, err
			}
			answers[p.Name] = answer
			continue
		}
		answer, err := driver.Input(message, p.Default)
		if err != nil {
			return nil, err
		}
		answers[p.Name] = params.ValueOf(answer)
	}
	return answers, nil
}
