package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/speakuppartners/site/internal/site"
)

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the page identifiers accepted by the navigate action",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PAGE\tLABEL")
			for _, item := range site.NavItems() {
				fmt.Fprintf(w, "%s\t%s\n", item.Page, item.Label)
			}
			return w.Flush()
		},
	}
}
