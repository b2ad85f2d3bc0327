// internal/catalog/images.go
package catalog

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

const (
	pathSeparator     = "/"
	priorityDelimiter = "__"

	// PriorityUnknown is assigned to images whose small path carries no
	// readable priority. It sorts after every valid priority.
	PriorityUnknown = math.MaxInt
)

// parsePriority extracts the numeric prefix of the file segment of a small
// image path, e.g. "kugeln/100__PXL_120232.jpg" yields 100.
func parsePriority(small string) (int, bool) {
	_, rest, ok := strings.Cut(small, pathSeparator)
	if !ok {
		return 0, false
	}
	segment, _, _ := strings.Cut(rest, pathSeparator)
	prefix, _, ok := strings.Cut(segment, priorityDelimiter)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PriorityKey returns the display priority of img, or PriorityUnknown when
// the small path is malformed. A bad filename only demotes the image.
func PriorityKey(img ProductImage) int {
	if n, ok := parsePriority(img.Small); ok {
		return n
	}
	return PriorityUnknown
}

// OrderImages returns a copy of images sorted ascending by PriorityKey.
// Images with equal keys keep their input order.
func OrderImages(images []ProductImage) []ProductImage {
	ordered := slices.Clone(images)
	slices.SortStableFunc(ordered, func(a, b ProductImage) int {
		return cmp.Compare(PriorityKey(a), PriorityKey(b))
	})
	return ordered
}
