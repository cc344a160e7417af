package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/speakuppartners/site/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "catalog",
		Short: "Print the course catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := catalog.Courses()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(courses)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLEVEL\tDURATION\tPRICE\tDISCOUNTED\tTAG")
			fmt.Fprintln(w, "--\t-----\t-----\t--------\t-----\t----------\t---")
			for _, c := range courses {
				discounted := "-"
				if c.HasDiscount() {
					discounted = c.DiscountedPrice.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					c.ID, c.Title, c.Level, c.Duration, c.Price, discounted, c.Tag)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d courses. Flagship: %s\n", len(courses), catalog.Flagship().Title)
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	return c
}
