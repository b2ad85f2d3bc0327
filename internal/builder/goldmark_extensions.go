// internal/builder/goldmark_extensions.go
package builder

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Link destinations that point into the catalog, e.g. [Kugeln](kategorie:kugeln).
const (
	productLinkPrefix  = "produkt:"
	categoryLinkPrefix = "kategorie:"
)

// catalogLinkTransformer rewrites catalog link destinations in product
// descriptions to the site paths of the linked pages.
type catalogLinkTransformer struct{}

func newCatalogLinkTransformer() parser.ASTTransformer {
	return &catalogLinkTransformer{}
}

func (t *catalogLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if dest, ok := resolveCatalogLink(string(link.Destination)); ok {
			link.Destination = []byte(dest)
		}
		return ast.WalkContinue, nil
	})
}

// resolveCatalogLink maps "produkt:<id>" and "kategorie:<tag>" to site paths.
func resolveCatalogLink(dest string) (string, bool) {
	if id, ok := strings.CutPrefix(dest, productLinkPrefix); ok && id != "" {
		return ProductURLPath(id), true
	}
	if tag, ok := strings.CutPrefix(dest, categoryLinkPrefix); ok && tag != "" {
		return CategoryURLPath(tag), true
	}
	return "", false
}
