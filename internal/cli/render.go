package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/daizutabi/textconf/internal/output"
	"github.com/daizutabi/textconf/pkg/params"
	"github.com/daizutabi/textconf/pkg/render"
)

var (
	renderValues []string
	renderSets   []string
	renderOut    string
	renderPrompt bool
	renderStdin  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a template with the given values",
	Long: `Render a configuration template.

Values come from YAML files (--values), explicit overrides (--set), and
interactive prompts (--prompt) for parameters declared in the template as
{name=default} spans. Later values files override earlier ones, and --set
overrides everything.

Examples:
  textconf render nginx.conf.tmpl
  textconf render nginx.conf.tmpl --values prod.yaml --set workers=8
  textconf render nginx.conf.tmpl --dir conf --output nginx.conf
  cat nginx.conf.tmpl | textconf render --stdin --set host=localhost`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringArrayVarP(&renderValues, "values", "f", nil, "YAML values file (repeatable, later files override earlier ones)")
	renderCmd.Flags().StringArrayVar(&renderSets, "set", nil, "explicit name=value parameter (repeatable, highest precedence)")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write the result to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderPrompt, "prompt", false, "ask for declared parameters interactively")
	renderCmd.Flags().BoolVar(&renderStdin, "stdin", false, "read template text from standard input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if !renderStdin && len(args) == 0 {
		return fmt.Errorf("cli: template argument or --stdin is required")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	dir := flagDir
	if dir == "" {
		dir = settings.Dir
	}

	valueFiles := append([]string{}, settings.Values...)
	valueFiles = append(valueFiles, renderValues...)
	values, err := loadValuesFiles(valueFiles)
	if err != nil {
		return err
	}

	sets, err := parseSets(renderSets)
	if err != nil {
		return err
	}

	var text string
	var file string
	if renderStdin {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("cli: read template from stdin: %w", err)
		}
		text = string(raw)
	} else {
		file, err = resolveTemplate(args[0], dir)
		if err != nil {
			return err
		}
	}

	if renderPrompt {
		source := text
		if file != "" {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("cli: read template %s: %w", file, err)
			}
			source = string(raw)
		}
		declared, err := params.Parse(source)
		if err != nil {
			return err
		}
		skip := make(map[string]bool, len(sets))
		for name := range sets {
			skip[name] = true
		}
		answers, err := promptParams(prompter, declared, skip)
		if err != nil {
			return err
		}
		for name, value := range answers {
			sets[name] = value
		}
	}

	result, err := render.New().Render(ctxOrBackground(cmd), render.Request{
		File:      file,
		Text:      text,
		Fragments: []render.Fragment{render.Values(values)},
		Params:    sets,
	})
	if err != nil {
		return err
	}

	if renderOut != "" {
		if err := os.WriteFile(renderOut, []byte(result), 0o644); err != nil {
			return fmt.Errorf("cli: write output %s: %w", renderOut, err)
		}
		output.Success("rendered %s", renderOut)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), result)
	return nil
}
