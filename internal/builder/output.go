// internal/builder/output.go
package builder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"katalog/internal/util"
)

// ErrOutsideRoot is returned for a target path that would leave the output root.
var ErrOutsideRoot = errors.New("path escapes the output root")

// Router maps pages to files below the output root and writes them.
type Router struct {
	root string
}

func NewRouter(root string) *Router {
	return &Router{root: root}
}

// WritePage writes html to the slash-separated path rel below the root,
// creating parent directories as needed and replacing any previous file.
func (r *Router) WritePage(rel, html string) (string, error) {
	dest, err := r.resolve(rel)
	if err != nil {
		return dest, err
	}
	if err := util.EnsureParentDir(dest); err != nil {
		return dest, err
	}
	return dest, os.WriteFile(dest, []byte(html), 0644)
}

// CopyAsset copies the file src byte-for-byte to rel below the root.
func (r *Router) CopyAsset(src, rel string) (string, error) {
	dest, err := r.resolve(rel)
	if err != nil {
		return dest, err
	}
	if err := util.EnsureParentDir(dest); err != nil {
		return dest, err
	}
	in, err := os.Open(src)
	if err != nil {
		return dest, err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return dest, err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return dest, fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return dest, out.Close()
}

// resolve joins the slash-separated path rel to the root. rel must be local.
func (r *Router) resolve(rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return rel, fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return filepath.Join(r.root, local), nil
}
