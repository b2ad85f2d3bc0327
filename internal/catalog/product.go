// internal/catalog/product.go
package catalog

import "slices"

// ProductImage holds the rendered variants of one product photo. Small is
// expected to look like "<dir>/<priority>__<name>", see PriorityKey.
type ProductImage struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// Product is a single catalog entry as produced by the upstream data pipeline.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"` // markdown
	Tags        []string       `json:"tags"`
	Images      []ProductImage `json:"images"`
}

// HasTag reports whether the product is listed under tag.
func (p Product) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// PreviewImage returns the representative image of the product. Products
// without images are rejected when the catalog is built.
func (p Product) PreviewImage() ProductImage {
	return p.Images[0]
}
