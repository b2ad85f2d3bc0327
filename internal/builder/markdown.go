// internal/builder/markdown.go
package builder

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Converter turns a markdown product description into an HTML fragment.
type Converter interface {
	ToHTML(markdown string) (string, error)
}

// MarkdownConverter renders with goldmark and, unless unsafe, sanitizes the
// result with bluemonday's UGC policy. It is safe for concurrent use.
type MarkdownConverter struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// NewMarkdownConverter returns a converter. With unsafe set, raw HTML in
// descriptions is passed through untouched.
func NewMarkdownConverter(unsafe bool) *MarkdownConverter {
	c := &MarkdownConverter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithASTTransformers(
					util.Prioritized(newCatalogLinkTransformer(), 100),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
	if !unsafe {
		c.sanitizer = bluemonday.UGCPolicy()
	}
	return c
}

func (c *MarkdownConverter) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	if c.sanitizer != nil {
		return string(c.sanitizer.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}
