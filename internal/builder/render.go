// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

const (
	shellTemplate = "index"
	mainTemplate  = "main"
)

// partialNames lists the partials loaded next to the shell. "preview" is a
// product card used by the listing partials.
var partialNames = []string{
	string(KindHome),
	string(KindProduct),
	string(KindCategory),
	"preview",
	string(KindImpressum),
	string(KindDataProtection),
	string(KindNotFound),
}

// sharedKinds are rendered with shells compiled once at load time.
var sharedKinds = []PageKind{KindHome, KindImpressum, KindDataProtection, KindNotFound}

var templateFuncs = template.FuncMap{
	"productURL":  ProductURLPath,
	"categoryURL": CategoryURLPath,
}

// Renderer renders page models through the page shell. The shell must call
// {{ template "main" . }}, which is bound to the partial of the page's kind.
type Renderer struct {
	shell    string
	partials map[string]string
	shared   map[PageKind]*template.Template
}

// LoadTemplates reads index.html and one <partial>.html per partial name
// from dir and compiles the shared shells.
func LoadTemplates(dir string) (*Renderer, error) {
	shell, err := os.ReadFile(filepath.Join(dir, shellTemplate+".html"))
	if err != nil {
		return nil, err
	}
	partials := make(map[string]string, len(partialNames))
	for _, name := range partialNames {
		src, err := os.ReadFile(filepath.Join(dir, name+".html"))
		if err != nil {
			return nil, err
		}
		partials[name] = string(src)
	}
	return NewRenderer(string(shell), partials)
}

// NewRenderer compiles the shared shells from template sources. partials
// must hold a source for every partial name.
func NewRenderer(shell string, partials map[string]string) (*Renderer, error) {
	for _, name := range partialNames {
		if _, ok := partials[name]; !ok {
			return nil, fmt.Errorf("missing partial %q", name)
		}
	}
	r := &Renderer{
		shell:    shell,
		partials: partials,
		shared:   make(map[PageKind]*template.Template, len(sharedKinds)),
	}
	for _, kind := range sharedKinds {
		tmpl, err := r.compile(kind)
		if err != nil {
			return nil, err
		}
		r.shared[kind] = tmpl
	}
	return r, nil
}

// compile parses the shell and all partials from source and binds "main"
// to the partial of kind.
func (r *Renderer) compile(kind PageKind) (*template.Template, error) {
	tmpl, err := template.New(shellTemplate).Funcs(templateFuncs).Parse(r.shell)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}
	for _, name := range partialNames {
		if _, err := tmpl.New(name).Parse(r.partials[name]); err != nil {
			return nil, fmt.Errorf("failed to parse partial %s: %w", name, err)
		}
	}
	if _, err := tmpl.New(mainTemplate).Parse(`{{ template "` + string(kind) + `" . }}`); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// Render executes the shell for page. Product and category pages get a shell
// compiled from source on every call.
func (r *Renderer) Render(page Page) (string, error) {
	var (
		tmpl *template.Template
		err  error
	)
	switch p := page.(type) {
	case *HomePage:
		tmpl = r.shared[KindHome]
	case *StaticPage:
		tmpl = r.shared[p.MainTemplate]
	case *NotFoundPage:
		tmpl = r.shared[KindNotFound]
	case *ProductPage, *CategoryPage:
		tmpl, err = r.compile(page.Kind())
	default:
		return "", fmt.Errorf("unsupported page type %T", page)
	}
	if err != nil {
		return "", err
	}
	if tmpl == nil {
		return "", fmt.Errorf("no shell for page kind %q", page.Kind())
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, shellTemplate, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
