package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sup-cli",
		Short: "Speak Up Partners site tool",
		Long: `sup-cli inspects the Speak Up Partners course catalog and exports the
site as static HTML.

Use "sup-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newVersionCmd(), newCatalogCmd(), newPagesCmd(), newExportCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
