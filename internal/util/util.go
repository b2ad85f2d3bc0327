package util

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ComputeBaseHref calculates the relative path to the site root
// so that CSS/JS links work correctly for pages at any depth.
// For example, a page at produkt/a/index.html gets a BaseHref of "../../".
func ComputeBaseHref(relPath string) string {
	dir := path.Dir(filepath.ToSlash(relPath))
	if dir == "." {
		return ""
	}
	depth := strings.Count(dir, "/") + 1
	return strings.Repeat("../", depth)
}

// EnsureParentDir creates the directory holding file. It succeeds if the
// directory already exists, also when created concurrently.
func EnsureParentDir(file string) error {
	return os.MkdirAll(filepath.Dir(file), 0755)
}
