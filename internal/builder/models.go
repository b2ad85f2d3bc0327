// internal/builder/models.go
package builder

import (
	"html/template"

	"katalog/internal/catalog"
)

// PageKind names the partial rendered into the page shell.
type PageKind string

const (
	KindHome           PageKind = "home"
	KindProduct        PageKind = "product"
	KindCategory       PageKind = "category"
	KindImpressum      PageKind = "impressum"
	KindDataProtection PageKind = "data-protection"
	KindNotFound       PageKind = "404"
)

// Description is either PlainText, escaped by the template engine, or
// TrustedHTML, emitted as-is.
type Description interface {
	// Value is what templates print, a string or a template.HTML.
	Value() any
	isDescription()
}

// PlainText is a description that must be escaped.
type PlainText string

func (t PlainText) Value() any   { return string(t) }
func (PlainText) isDescription() {}

// TrustedHTML is pre-rendered markup that must not be escaped again.
type TrustedHTML string

func (h TrustedHTML) Value() any   { return template.HTML(h) }
func (TrustedHTML) isDescription() {}

// MetaAttributes is the Open Graph block of a page.
type MetaAttributes struct {
	OgImage       string
	OgTitle       string
	OgType        string
	OgURL         string
	OgSiteName    string
	OgDescription Description
}

// Page is implemented by HomePage, ProductPage, CategoryPage, StaticPage
// and NotFoundPage only.
type Page interface {
	Kind() PageKind
	// OutputPath is the slash-separated path below the output root.
	OutputPath() string
	// Name identifies the page instance in logs and errors.
	Name() string
	isPage()
}

// PageData holds the fields every page passes to the shell template.
type PageData struct {
	Tags         []string
	MainTemplate PageKind
	Meta         MetaAttributes
	// BaseHref is the relative path from the page to the site root,
	// e.g. "../../" for product pages.
	BaseHref string
}

func (d *PageData) Kind() PageKind { return d.MainTemplate }
func (d *PageData) isPage()        {}

// HomePage lists the whole catalog.
type HomePage struct {
	PageData
	Products []catalog.Product
}

func (p *HomePage) OutputPath() string { return "index.html" }
func (p *HomePage) Name() string       { return string(KindHome) }

// ProductPage shows one product. Description is the rendered markdown.
type ProductPage struct {
	PageData
	Product     catalog.Product
	Description template.HTML
}

func (p *ProductPage) OutputPath() string { return "produkt/" + p.Product.ID + "/index.html" }
func (p *ProductPage) Name() string       { return string(KindProduct) + ":" + p.Product.ID }

// CategoryPage lists the products carrying Tag.
type CategoryPage struct {
	PageData
	Tag      string
	Products []catalog.Product
}

func (p *CategoryPage) OutputPath() string { return "kategorie/" + p.Tag + ".html" }
func (p *CategoryPage) Name() string       { return string(KindCategory) + ":" + p.Tag }

// StaticPage is a page without catalog content: impressum or data protection.
type StaticPage struct {
	PageData
}

func (p *StaticPage) OutputPath() string {
	if p.MainTemplate == KindDataProtection {
		return "datenschutz.html"
	}
	return string(p.MainTemplate) + ".html"
}
func (p *StaticPage) Name() string { return string(p.MainTemplate) }

// NotFoundPage is served for unknown paths and lists the whole catalog.
type NotFoundPage struct {
	PageData
	Products []catalog.Product
}

func (p *NotFoundPage) OutputPath() string { return "404.html" }
func (p *NotFoundPage) Name() string       { return string(KindNotFound) }

// ProductURLPath is the site path of a product page.
func ProductURLPath(id string) string { return "/produkt/" + id + "/" }

// CategoryURLPath is the site path of a category page.
func CategoryURLPath(tag string) string { return "/kategorie/" + tag + ".html" }
