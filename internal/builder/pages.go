// internal/builder/pages.go
package builder

import (
	"fmt"
	"html/template"

	"katalog/internal/catalog"
	"katalog/internal/config"
	"katalog/internal/util"
)

// PageBuilder assembles page models from a catalog. It keeps no state
// between calls; every model is freshly built.
type PageBuilder struct {
	site     config.SiteConfig
	catalog  *catalog.Catalog
	markdown Converter
}

// NewPageBuilder returns a builder for cat.
func NewPageBuilder(site config.SiteConfig, cat *catalog.Catalog, markdown Converter) *PageBuilder {
	return &PageBuilder{site: site, catalog: cat, markdown: markdown}
}

func (b *PageBuilder) data(kind PageKind, outputPath string, meta MetaAttributes) PageData {
	return PageData{
		Tags:         b.catalog.Tags(),
		MainTemplate: kind,
		Meta:         meta,
		BaseHref:     util.ComputeBaseHref(outputPath),
	}
}

func (b *PageBuilder) meta(title string, desc Description, urlPath string, image string) MetaAttributes {
	return MetaAttributes{
		OgImage:       image,
		OgTitle:       title,
		OgType:        b.site.OgType,
		OgURL:         b.site.URL(urlPath),
		OgSiteName:    b.site.SiteName,
		OgDescription: desc,
	}
}

// aggregateImage is the og:image of a page listing products, of which
// representative is the first.
func (b *PageBuilder) aggregateImage(representative catalog.Product) string {
	if b.site.OgImage == config.OgImageFirst {
		return b.catalog.First().PreviewImage().Large
	}
	return representative.PreviewImage().Large
}

// BuildHome builds the home page.
func (b *PageBuilder) BuildHome() *HomePage {
	p := &HomePage{Products: b.catalog.Products()}
	p.PageData = b.data(KindHome, p.OutputPath(), b.meta(
		b.site.Home.Title,
		PlainText(b.site.Home.Description),
		"",
		b.catalog.First().PreviewImage().Large,
	))
	return p
}

// BuildProduct builds the page of product. Its description is the only one
// rendered from markdown.
func (b *PageBuilder) BuildProduct(product catalog.Product) (*ProductPage, error) {
	rendered, err := b.markdown.ToHTML(product.Description)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", product.ID, err)
	}
	p := &ProductPage{Product: product, Description: template.HTML(rendered)}
	p.PageData = b.data(KindProduct, p.OutputPath(), b.meta(
		product.Name,
		TrustedHTML(rendered),
		ProductURLPath(product.ID),
		product.PreviewImage().Large,
	))
	return p, nil
}

// BuildCategory builds the listing of tag.
func (b *PageBuilder) BuildCategory(tag string) (*CategoryPage, error) {
	products := b.catalog.WithTag(tag)
	if len(products) == 0 {
		return nil, fmt.Errorf("category %q has no products", tag)
	}
	p := &CategoryPage{Tag: tag, Products: products}
	p.PageData = b.data(KindCategory, p.OutputPath(), b.meta(
		fmt.Sprintf(b.site.CategoryTitle, tag),
		PlainText(fmt.Sprintf(b.site.CategoryDescription, tag)),
		CategoryURLPath(tag),
		b.aggregateImage(products[0]),
	))
	return p, nil
}

// BuildImpressum builds the legal notice.
func (b *PageBuilder) BuildImpressum() *StaticPage {
	return b.static(KindImpressum, b.site.Impressum, "/impressum.html")
}

// BuildDataProtection builds the privacy notice.
func (b *PageBuilder) BuildDataProtection() *StaticPage {
	return b.static(KindDataProtection, b.site.DataProtection, "/datenschutz.html")
}

func (b *PageBuilder) static(kind PageKind, text config.PageText, urlPath string) *StaticPage {
	p := &StaticPage{}
	p.MainTemplate = kind
	p.PageData = b.data(kind, p.OutputPath(), b.meta(
		text.Title,
		PlainText(text.Description),
		urlPath,
		b.catalog.First().PreviewImage().Large,
	))
	return p
}

// BuildNotFound builds the 404 page. It links to the site root.
func (b *PageBuilder) BuildNotFound() *NotFoundPage {
	p := &NotFoundPage{Products: b.catalog.Products()}
	p.PageData = b.data(KindNotFound, p.OutputPath(), b.meta(
		b.site.NotFound.Title,
		PlainText(b.site.NotFound.Description),
		"",
		b.catalog.First().PreviewImage().Large,
	))
	return p
}

// Pages builds every page of the site: home, one per product, one per tag,
// impressum, data protection and 404, in that order.
func (b *PageBuilder) Pages() ([]Page, error) {
	products := b.catalog.Products()
	tags := b.catalog.Tags()
	pages := make([]Page, 0, len(products)+len(tags)+4)

	pages = append(pages, b.BuildHome())
	for _, product := range products {
		p, err := b.BuildProduct(product)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	for _, tag := range tags {
		p, err := b.BuildCategory(tag)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	pages = append(pages, b.BuildImpressum(), b.BuildDataProtection(), b.BuildNotFound())
	return pages, nil
}
