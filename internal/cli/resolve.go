package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daizutabi/textconf/internal/output"
	"github.com/daizutabi/textconf/pkg/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <template>",
	Short: "Print the resolved template path",
	Long: `Resolve a template reference against the search path and print the
absolute path that would be rendered. When nothing matches, every searched
candidate is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	dir := flagDir
	if dir == "" {
		dir = settings.Dir
	}

	path, err := resolveTemplate(args[0], dir)
	if err != nil {
		var notFound *resolve.NotFoundError
		if errors.As(err, &notFound) {
			for _, candidate := range notFound.Searched {
				output.Info("searched %s", candidate)
			}
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// resolveTemplate locates reference the way the library does, anchored at
// --anchor or the working directory.
func resolveTemplate(reference, dir string) (string, error) {
	anchor := flagAnchor
	if anchor == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cli: read working directory: %w", err)
		}
		anchor = wd
	}
	var options []resolve.Option
	if dir != "" {
		options = append(options, resolve.WithDir(dir))
	}
	return resolve.Resolve(anchor, reference, options...)
}
