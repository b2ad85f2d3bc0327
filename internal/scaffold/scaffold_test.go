package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewSite(t *testing.T) {
	dir := t.TempDir()
	written, err := CreateNewSite(dir)
	require.NoError(t, err)

	for _, want := range []string{
		"site.yaml",
		"src/index.html",
		"src/home.html",
		"src/product.html",
		"src/category.html",
		"src/preview.html",
		"src/impressum.html",
		"src/data-protection.html",
		"src/404.html",
		"src/robots.txt",
		"dist/bootstrap/produkt/products.json",
	} {
		assert.Contains(t, written, want)
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(want)))
		assert.NoError(t, err, want)
	}
}

func TestCreateNewSite_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte("mine"), 0o644))

	_, err := CreateNewSite(dir)
	require.ErrorIs(t, err, fs.ErrExist)

	content, err := os.ReadFile(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))
}
