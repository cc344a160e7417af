// Package export writes a static snapshot of the site: one HTML document per
// page in its initial state, plus the static assets. Action forms in the
// snapshot still post to the live endpoints.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"github.com/speakuppartners/site/internal/rendering"
	"github.com/speakuppartners/site/internal/site"
	"github.com/speakuppartners/site/internal/storage"
	"github.com/speakuppartners/site/internal/view"
	"github.com/speakuppartners/site/web"
	"github.com/speakuppartners/site/web/src/templates/layouts"
)

// Options tune an export run.
type Options struct {
	Theme layouts.Theme
	// Year is printed in the footer. Zero means the current year.
	Year int
}

// PagePath is where the document for p is written.
func PagePath(p site.PageID) string {
	return path.Join(string(p), "index.html")
}

// Site renders every page and copies the static assets into store. It
// returns the paths it wrote, in order.
func Site(ctx context.Context, store storage.Store, r rendering.Renderer, opts Options) ([]string, error) {
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	if opts.Theme == (layouts.Theme{}) {
		opts.Theme = layouts.DefaultTheme
	}

	var written []string
	for _, p := range site.Pages() {
		body, err := renderPage(ctx, r, p, opts)
		if err != nil {
			return written, err
		}

		targets := []string{PagePath(p)}
		if p == site.PageHome {
			targets = append([]string{"index.html"}, targets...)
		}
		for _, target := range targets {
			if _, err := store.Save(ctx, target, bytes.NewReader(body)); err != nil {
				return written, fmt.Errorf("write %s: %w", target, err)
			}
			written = append(written, target)
		}
		slog.Debug("Exported page", "page", p, "bytes", len(body))
	}

	assets, err := copyStatic(ctx, store)
	written = append(written, assets...)
	return written, err
}

func renderPage(ctx context.Context, r rendering.Renderer, p site.PageID, opts Options) ([]byte, error) {
	state := site.Initial()
	state.Page = p

	body, err := r.RenderComponent(ctx, view.AppNode(view.AppData{
		State: state,
		Theme: opts.Theme,
		Year:  opts.Year,
	}))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", p, err)
	}
	return body, nil
}

func copyStatic(ctx context.Context, store storage.Store) ([]string, error) {
	var written []string
	err := fs.WalkDir(web.FS, "static", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := web.FS.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := store.Save(ctx, name, f); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	})
	return written, err
}
