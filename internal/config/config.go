// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	kerrors "katalog/internal/errors"
)

// DefaultFile is the config file looked up when none is given explicitly.
const DefaultFile = "site.yaml"

// Modes for choosing the default og:image of a page.
const (
	OgImageRelevant = "relevant" // the page's own most relevant product
	OgImageFirst    = "first"    // always the first product of the catalog
)

// Paths locates the build inputs and the output root.
type Paths struct {
	Dataset   string `yaml:"dataset"`
	Templates string `yaml:"templates"`
	Output    string `yaml:"output"`
	Robots    string `yaml:"robots"`
}

// PageText is the fixed title and description of a page without product content.
type PageText struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SiteConfig holds the configuration from the site.yaml file. Every field
// has a default, so the file itself is optional.
type SiteConfig struct {
	SiteURL  string `yaml:"site_url"`
	SiteName string `yaml:"site_name"`
	OgType   string `yaml:"og_type"`
	Locale   string `yaml:"locale"`
	OgImage  string `yaml:"og_image"`
	Workers  int    `yaml:"workers"`
	Unsafe   bool   `yaml:"unsafe"`

	Home           PageText `yaml:"home"`
	NotFound       PageText `yaml:"not_found"`
	Impressum      PageText `yaml:"impressum"`
	DataProtection PageText `yaml:"data_protection"`

	// Format strings taking the tag name.
	CategoryTitle       string `yaml:"category_title"`
	CategoryDescription string `yaml:"category_description"`

	Paths Paths `yaml:"paths"`
}

// Defaults returns the configuration of the reinhoiz.de catalog.
func Defaults() SiteConfig {
	return SiteConfig{
		SiteURL:  "http://www.reinhoiz.de",
		SiteName: "http://www.reinhoiz.de",
		OgType:   "website",
		Locale:   "de",
		OgImage:  OgImageRelevant,
		Workers:  1,
		Home: PageText{
			Title:       "Hochwertige Dekorationsgegenstände aus Holz. reinhoiz.de",
			Description: "Hochwertige Dekorationsgegenstände aus Holz",
		},
		NotFound: PageText{
			Title:       "Schöne Bastelsachen aus Holz. reinhoiz.de",
			Description: "Hier findest du Bastelsachen aus Holz",
		},
		Impressum: PageText{
			Title:       "Impressum",
			Description: "Impressum",
		},
		DataProtection: PageText{
			Title:       "Datenschutzerklärung",
			Description: "Datenschutzerklärung",
		},
		CategoryTitle:       "Kategorie %s",
		CategoryDescription: "Alles zum Thema %s",
		Paths: Paths{
			Dataset:   "dist/bootstrap/produkt/products.json",
			Templates: "src",
			Output:    "dist/bootstrap",
			Robots:    "src/robots.txt",
		},
	}
}

// LoadSiteConfig reads path on top of Defaults. When explicit is false a
// missing file is not an error and the defaults are returned as-is.
func LoadSiteConfig(path string, explicit bool) (SiteConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c SiteConfig) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return kerrors.ValidationFailed("locale", fmt.Sprintf("%q is not a language tag: %v", c.Locale, err))
	}
	if c.OgImage != OgImageRelevant && c.OgImage != OgImageFirst {
		return kerrors.ValidationFailed("og_image", fmt.Sprintf("must be %q or %q, got %q", OgImageRelevant, OgImageFirst, c.OgImage))
	}
	if c.Workers < 1 {
		return kerrors.ValidationFailed("workers", fmt.Sprintf("must be at least 1, got %d", c.Workers))
	}
	for _, f := range []struct{ name, value string }{
		{"category_title", c.CategoryTitle},
		{"category_description", c.CategoryDescription},
	} {
		if !hasSingleTagVerb(f.value) {
			return kerrors.ValidationFailed(f.name, fmt.Sprintf("must contain exactly one %%s and no other verb, got %q", f.value))
		}
	}
	for _, p := range []struct{ name, value string }{
		{"paths.dataset", c.Paths.Dataset},
		{"paths.templates", c.Paths.Templates},
		{"paths.output", c.Paths.Output},
		{"paths.robots", c.Paths.Robots},
	} {
		if p.value == "" {
			return kerrors.ValidationFailed(p.name, "must not be empty")
		}
	}
	return nil
}

// hasSingleTagVerb reports whether format consumes exactly one %s argument.
// Escaped percent signs are allowed.
func hasSingleTagVerb(format string) bool {
	rest := strings.ReplaceAll(format, "%%", "")
	return strings.Count(rest, "%s") == 1 && strings.Count(rest, "%") == 1
}

// Language returns the collation locale. Validate must have succeeded.
func (c SiteConfig) Language() language.Tag {
	return language.MustParse(c.Locale)
}

// URL joins the site URL with an absolute site path.
func (c SiteConfig) URL(path string) string {
	return strings.TrimSuffix(c.SiteURL, "/") + path
}
