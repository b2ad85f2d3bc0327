// internal/builder/builder.go
package builder

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"katalog/internal/catalog"
	"katalog/internal/config"
	kerrors "katalog/internal/errors"
	"katalog/internal/logfields"
)

const robotsFile = "robots.txt"

// Result summarizes a finished build.
type Result struct {
	Pages    int
	Products int
	Tags     int
}

// BuildSite reads the dataset and templates named by site.Paths and writes
// the complete site. All inputs are read before the first file is written;
// the first failure aborts the build.
func BuildSite(ctx context.Context, site config.SiteConfig, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	if err := site.Validate(); err != nil {
		return Result{}, err
	}

	products, err := catalog.Load(site.Paths.Dataset)
	if err != nil {
		return Result{}, kerrors.InputMissing(site.Paths.Dataset, err)
	}
	cat, err := catalog.New(products, site.Language())
	if err != nil {
		return Result{}, kerrors.EmptyCatalog(err).WithContext("path", site.Paths.Dataset)
	}
	renderer, err := LoadTemplates(site.Paths.Templates)
	if err != nil {
		return Result{}, kerrors.InputMissing(site.Paths.Templates, err)
	}
	if _, err := os.Stat(site.Paths.Robots); err != nil {
		return Result{}, kerrors.InputMissing(site.Paths.Robots, err)
	}
	logger.Info("Catalog loaded",
		logfields.Count(len(cat.Products())),
		slog.Int("tags", len(cat.Tags())))

	pages, err := NewPageBuilder(site, cat, NewMarkdownConverter(site.Unsafe)).Pages()
	if err != nil {
		return Result{}, kerrors.RenderFailed("model", err)
	}

	router := NewRouter(site.Paths.Output)
	if err := writePages(ctx, renderer, router, pages, site.Workers, logger); err != nil {
		return Result{}, err
	}

	dest, err := router.CopyAsset(site.Paths.Robots, robotsFile)
	if err != nil {
		return Result{}, kerrors.WriteFailed(dest, err)
	}
	logger.Debug("Asset copied", logfields.Path(dest))

	logger.Info("Site written",
		logfields.Count(len(pages)),
		logfields.Path(site.Paths.Output),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return Result{Pages: len(pages), Products: len(cat.Products()), Tags: len(cat.Tags())}, nil
}

// writePages renders and writes pages using up to workers goroutines.
func writePages(ctx context.Context, renderer *Renderer, router *Router, pages []Page, workers int, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, page := range pages {
		page := page
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return writePage(renderer, router, page, logger)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func writePage(renderer *Renderer, router *Router, page Page, logger *slog.Logger) error {
	html, err := renderer.Render(page)
	if err != nil {
		return kerrors.RenderFailed(page.Name(), err)
	}
	dest, err := router.WritePage(page.OutputPath(), html)
	if err != nil {
		return kerrors.WriteFailed(dest, err)
	}
	logger.Debug("Page written", pageAttrs(page, dest)...)
	return nil
}

// pageAttrs returns the log fields identifying page and its output file.
func pageAttrs(page Page, dest string) []any {
	attrs := []any{logfields.PageKind(string(page.Kind())), logfields.Path(dest)}
	switch p := page.(type) {
	case *ProductPage:
		attrs = append(attrs, logfields.ProductID(p.Product.ID))
	case *CategoryPage:
		attrs = append(attrs, logfields.Tag(p.Tag))
	}
	return attrs
}
