// internal/catalog/catalog.go
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyCatalog is returned when the dataset contains no products.
	ErrEmptyCatalog = errors.New("catalog contains no products")
	// ErrNoImages is returned for a product without any image.
	ErrNoImages = errors.New("product has no images")
	// ErrInvalidID is returned for a product id that cannot name a page.
	ErrInvalidID = errors.New("invalid product id")
	// ErrDuplicateID is returned when two products share an id.
	ErrDuplicateID = errors.New("duplicate product id")
	// ErrInvalidTag is returned for a tag that cannot name a page.
	ErrInvalidTag = errors.New("invalid tag")
)

// Catalog is the read-only view of the dataset shared by all page builders:
// products in display order, each with its images ordered, and the tag index.
type Catalog struct {
	products []Product
	tags     []string
}

// New validates products and derives the display order. The input slice is
// not modified.
func New(products []Product, lang language.Tag) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	sorted := make([]Product, len(products))
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if !isPathSegment(p.ID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
		for _, tag := range p.Tags {
			if !isPathSegment(tag) {
				return nil, fmt.Errorf("%w: %q in product %q", ErrInvalidTag, tag, p.ID)
			}
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoImages, p.ID)
		}
		p.Tags = slices.Clone(p.Tags)
		p.Images = OrderImages(p.Images)
		sorted[i] = p
	}
	SortByName(sorted, lang)
	return &Catalog{
		products: sorted,
		tags:     BuildTagIndex(sorted),
	}, nil
}

// isPathSegment reports whether s can be used verbatim as one output path
// element: ids name a directory and tags a file.
func isPathSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

// SortByName orders products by name using the collation rules of lang.
// Products with equal names keep their relative order.
func SortByName(products []Product, lang language.Tag) {
	c := collate.New(lang)
	slices.SortStableFunc(products, func(a, b Product) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// Products returns all products in display order. Callers must not modify it.
func (c *Catalog) Products() []Product { return c.products }

// Tags returns the tag index. Callers must not modify it.
func (c *Catalog) Tags() []string { return c.tags }

// First returns the first product in display order.
func (c *Catalog) First() Product { return c.products[0] }

// WithTag returns the products listed under tag, in display order.
func (c *Catalog) WithTag(tag string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Load reads the product dataset at path.
func Load(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	products, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return products, nil
}

// Decode parses a dataset. Both a JSON array of products and an object keyed
// by product id are accepted; for the latter, records are returned sorted by
// id and a missing id is taken from the key.
func Decode(r io.Reader) ([]Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var byID map[string]Product
		if err := json.Unmarshal(trimmed, &byID); err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		products := make([]Product, 0, len(ids))
		for _, id := range ids {
			p := byID[id]
			if p.ID == "" {
				p.ID = id
			}
			products = append(products, p)
		}
		return products, nil
	}
	var products []Product
	if err := json.Unmarshal(trimmed, &products); err != nil {
		return nil, err
	}
	return products, nil
}
