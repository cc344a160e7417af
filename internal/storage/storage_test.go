package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	path := "courses/index.html"
	page := "<!doctype html><title>Kursus</title>"

	t.Run("Save creates parent dirs", func(t *testing.T) {
		n, err := store.Save(ctx, path, strings.NewReader(page))
		require.NoError(t, err)
		assert.Equal(t, int64(len(page)), n)

		got, err := afero.ReadFile(memFs, path)
		require.NoError(t, err)
		assert.Equal(t, page, string(got))
	})

	t.Run("Save overwrites", func(t *testing.T) {
		_, err := store.Save(ctx, path, strings.NewReader("v2"))
		require.NoError(t, err)

		got, err := afero.ReadFile(memFs, path)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(got))
	})

	t.Run("Open", func(t *testing.T) {
		f, err := store.Open(ctx, path)
		require.NoError(t, err)
		defer f.Close()

		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(got))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, path))

		exists, err := afero.Exists(memFs, path)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Open missing file", func(t *testing.T) {
		_, err := store.Open(ctx, "blog/index.html")
		assert.Error(t, err)
	})

	t.Run("Save honours cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Save(cancelled, "about/index.html", strings.NewReader(page))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDirStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	store, err := NewDirStore(dir)
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "index.html", strings.NewReader("home"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "home", string(got))
}
