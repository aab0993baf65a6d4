package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daizutabi/textconf/internal/output"
	"github.com/daizutabi/textconf/pkg/params"
)

var (
	paramsStrip bool
	paramsJSON  bool
)

var paramsCmd = &cobra.Command{
	Use:   "params <template>",
	Short: "List parameters declared in a template",
	Long: `List the {name=default} parameters declared in a template, with the
kind inferred from each default.

Examples:
  textconf params nginx.conf.tmpl
  textconf params nginx.conf.tmpl --json
  textconf params nginx.conf.tmpl --strip`,
	Args: cobra.ExactArgs(1),
	RunE: runParams,
}

func init() {
	paramsCmd.Flags().BoolVar(&paramsStrip, "strip", false, "print the template with parameter defaults removed")
	paramsCmd.Flags().BoolVar(&paramsJSON, "json", false, "print parameters as JSON")

	rootCmd.AddCommand(paramsCmd)
}

func runParams(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	dir := flagDir
	if dir == "" {
		dir = settings.Dir
	}

	file, err := resolveTemplate(args[0], dir)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cli: read template %s: %w", file, err)
	}
	declared, err := params.Parse(string(raw))
	if err != nil {
		return err
	}

	if paramsStrip {
		fmt.Fprint(cmd.OutOrStdout(), declared.Strip(string(raw)))
		return nil
	}

	if paramsJSON {
		type paramInfo struct {
			Name    string `json:"name"`
			Kind    string `json:"kind"`
			Default string `json:"default"`
			Format  string `json:"format,omitempty"`
		}
		infos := make([]paramInfo, len(declared))
		for i, p := range declared {
			infos[i] = paramInfo{Name: p.Name, Kind: string(p.Kind()), Default: p.Default, Format: p.Format}
		}
		return output.JSON(cmd.OutOrStdout(), infos)
	}

	rows := make([][]string, len(declared))
	for i, p := range declared {
		rows[i] = []string{p.Name, string(p.Kind()), p.Default, p.Format}
	}
	output.Table(cmd.OutOrStdout(), []string{"NAME", "KIND", "DEFAULT", "FORMAT"}, rows)
	return nil
}
