package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speakuppartners/site/internal/export"
	"github.com/speakuppartners/site/internal/rendering"
	"github.com/speakuppartners/site/internal/storage"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

func newExportCmd() *cobra.Command {
	var (
		out     string
		primary string
		accent  string
	)

	c := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static HTML",
		Long: `Renders each page in its initial state to <out>/<page>/index.html, the
home page additionally to <out>/index.html, and copies the static assets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.NewDirStore(out)
			if err != nil {
				return err
			}

			written, err := export.Site(cmd.Context(), store, rendering.NewUniversalRenderer(), export.Options{
				Theme: layouts.Theme{Primary: primary, Accent: accent},
			})
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}
	c.Flags().StringVar(&out, "out", "dist", "output directory")
	c.Flags().StringVar(&primary, "primary", layouts.DefaultTheme.Primary, "primary theme color")
	c.Flags().StringVar(&accent, "accent", layouts.DefaultTheme.Accent, "accent theme color")
	return c
}
