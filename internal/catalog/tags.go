// internal/catalog/tags.go
package catalog

import "slices"

// BuildTagIndex returns every tag used by any product exactly once, sorted.
func BuildTagIndex(products []Product) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range products {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	slices.Sort(tags)
	return tags
}
