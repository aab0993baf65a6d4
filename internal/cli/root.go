// Package cli implements the textconf command line interface.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/daizutabi/textconf/internal/output"
)

var (
	flagDir    string
	flagAnchor string
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textconf",
	Short: "Render configuration templates",
	Long: `textconf locates configuration templates on a layered search path and
renders them with values from files, flags, and interactive prompts.

Bare template names are searched in the working directory first, then in the
anchor directory and each of its ancestors. Template syntax is pongo2's
Django-style dialect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "subdirectory searched before bare template names")
	rootCmd.PersistentFlags().StringVar(&flagAnchor, "anchor", "", "directory anchoring the template search (default: working directory)")
}

// ctxOrBackground tolerates commands invoked outside Execute, as tests do.
func ctxOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
