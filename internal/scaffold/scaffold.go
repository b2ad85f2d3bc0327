// internal/scaffold/scaffold.go
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// skeleton holds a ready-to-build project: site.yaml, the page shell and
// partials under src/, robots.txt and a sample dataset.
//
//go:embed skeleton
var skeleton embed.FS

const skeletonRoot = "skeleton"

// CreateNewSite writes the starter project into dir and returns the written
// paths relative to dir. Existing files are never overwritten.
func CreateNewSite(dir string) ([]string, error) {
	root, err := fs.Sub(skeleton, skeletonRoot)
	if err != nil {
		return nil, err
	}
	var written []string
	err = fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		content, err := fs.ReadFile(root, path)
		if err != nil {
			return err
		}
		if err := writeNew(dest, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	})
	return written, err
}

// writeNew creates path with content and fails if path already exists.
func writeNew(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("refusing to overwrite %s: %w", path, err)
		}
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
