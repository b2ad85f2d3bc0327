package builder

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/internal/config"
	kerrors "katalog/internal/errors"
	"katalog/internal/scaffold"
)

// newSite scaffolds the starter project into a temp dir and returns a config
// pointing at it.
func newSite(t *testing.T) config.SiteConfig {
	t.Helper()
	dir := t.TempDir()
	_, err := scaffold.CreateNewSite(dir)
	require.NoError(t, err)

	site := config.Defaults()
	site.Paths = config.Paths{
		Dataset:   filepath.Join(dir, "dist", "bootstrap", "produkt", "products.json"),
		Templates: filepath.Join(dir, "src"),
		Output:    filepath.Join(dir, "dist", "bootstrap"),
		Robots:    filepath.Join(dir, "src", "robots.txt"),
	}
	return site
}

// snapshot reads every file below root, keyed by slash path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestBuildSite(t *testing.T) {
	site := newSite(t)

	res, err := BuildSite(context.Background(), site, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 8, Products: 2, Tags: 2}, res)

	files := snapshot(t, site.Paths.Output)
	for _, want := range []string{
		"index.html",
		"404.html",
		"impressum.html",
		"datenschutz.html",
		"produkt/kugel-ahorn/index.html",
		"produkt/stern-eiche/index.html",
		"kategorie/advent.html",
		"kategorie/drechselei.html",
		"robots.txt",
		"produkt/products.json",
	} {
		assert.Contains(t, files, want)
	}

	robots, err := os.ReadFile(site.Paths.Robots)
	require.NoError(t, err)
	assert.Equal(t, string(robots), files["robots.txt"])

	home := files["index.html"]
	assert.Contains(t, home, `<meta property="og:url" content="http://www.reinhoiz.de">`)
	assert.Contains(t, home, `<meta property="og:image" content="kugeln/large/100__front.jpg">`)
	assert.Less(t, strings.Index(home, "Kugel aus Ahorn"), strings.Index(home, "Stern aus Eiche"))

	product := files["produkt/kugel-ahorn/index.html"]
	assert.Contains(t, product, `<strong>Kugel</strong>`)
	assert.Contains(t, product, `href="/kategorie/advent.html"`)
	assert.Contains(t, product, `href="../../index.html"`)
	assert.Less(t, strings.Index(product, "100__front.jpg"), strings.Index(product, "200__seite.jpg"))

	drechselei := files["kategorie/drechselei.html"]
	assert.Contains(t, drechselei, "Kugel aus Ahorn")
	assert.NotContains(t, drechselei, "Stern aus Eiche")
	assert.Contains(t, drechselei, `content="Alles zum Thema drechselei"`)
}

func TestBuildSite_Idempotent(t *testing.T) {
	site := newSite(t)

	_, err := BuildSite(context.Background(), site, nil)
	require.NoError(t, err)
	first := snapshot(t, site.Paths.Output)

	_, err = BuildSite(context.Background(), site, nil)
	require.NoError(t, err)
	assert.Equal(t, first, snapshot(t, site.Paths.Output))
}

func TestBuildSite_ParallelMatchesSequential(t *testing.T) {
	sequential := newSite(t)
	_, err := BuildSite(context.Background(), sequential, nil)
	require.NoError(t, err)

	parallel := newSite(t)
	parallel.Workers = 4
	_, err = BuildSite(context.Background(), parallel, nil)
	require.NoError(t, err)

	assert.Equal(t, snapshot(t, sequential.Paths.Output), snapshot(t, parallel.Paths.Output))
}

func TestBuildSite_MissingInputWritesNothing(t *testing.T) {
	site := newSite(t)
	require.NoError(t, os.Remove(filepath.Join(site.Paths.Templates, "product.html")))

	_, err := BuildSite(context.Background(), site, nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsCategory(err, kerrors.CategoryInput))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(filepath.Join(site.Paths.Output, "index.html"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestBuildSite_MissingRobots(t *testing.T) {
	site := newSite(t)
	require.NoError(t, os.Remove(site.Paths.Robots))

	_, err := BuildSite(context.Background(), site, nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsCategory(err, kerrors.CategoryInput))
}

func TestBuildSite_EmptyCatalog(t *testing.T) {
	site := newSite(t)
	require.NoError(t, os.WriteFile(site.Paths.Dataset, []byte(`[]`), 0o644))

	_, err := BuildSite(context.Background(), site, nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsCategory(err, kerrors.CategoryInput))
}

func TestBuildSite_UnsafeDatasetWritesNothing(t *testing.T) {
	datasets := map[string]string{
		"escaping id":  `[{"id":"../../escaped","name":"X","images":[{"small":"x/1__a.jpg","large":"l/a.jpg"}]}]`,
		"escaping tag": `[{"id":"a","name":"X","tags":["../../t"],"images":[{"small":"x/1__a.jpg","large":"l/a.jpg"}]}]`,
		"duplicate id": `[{"id":"a","name":"X","images":[{"small":"x/1__a.jpg","large":"l/a.jpg"}]},` +
			`{"id":"a","name":"Y","images":[{"small":"x/1__b.jpg","large":"l/b.jpg"}]}]`,
	}
	for name, dataset := range datasets {
		t.Run(name, func(t *testing.T) {
			site := newSite(t)
			site.Workers = 4
			require.NoError(t, os.WriteFile(site.Paths.Dataset, []byte(dataset), 0o644))
			before := snapshot(t, filepath.Dir(filepath.Dir(site.Paths.Output)))

			_, err := BuildSite(context.Background(), site, nil)
			require.Error(t, err)
			assert.True(t, kerrors.IsCategory(err, kerrors.CategoryInput))
			assert.Equal(t, before, snapshot(t, filepath.Dir(filepath.Dir(site.Paths.Output))))
		})
	}
}

func TestBuildSite_DebugLogIdentifiesPages(t *testing.T) {
	site := newSite(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := BuildSite(context.Background(), site, logger)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "page_kind=product")
	assert.Contains(t, out, "product_id=kugel-ahorn")
	assert.Contains(t, out, "page_kind=category")
	assert.Contains(t, out, "tag=drechselei")
}

func TestBuildSite_InvalidConfig(t *testing.T) {
	site := newSite(t)
	site.Workers = 0

	_, err := BuildSite(context.Background(), site, nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsCategory(err, kerrors.CategoryValidation))
}

func TestBuildSite_WriteFailureAborts(t *testing.T) {
	site := newSite(t)
	// a file where the category directory must go
	require.NoError(t, os.WriteFile(filepath.Join(site.Paths.Output, "kategorie"), []byte("x"), 0o644))

	_, err := BuildSite(context.Background(), site, nil)
	require.Error(t, err)
	assert.True(t, kerrors.IsCategory(err, kerrors.CategoryFileSystem))
}

func TestBuildSite_Cancelled(t *testing.T) {
	site := newSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildSite(ctx, site, nil)
	require.ErrorIs(t, err, context.Canceled)
}
