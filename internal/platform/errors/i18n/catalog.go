// Package i18n renders localized messages for domain error codes.
package i18n

import (
	"maps"
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/yogastudio/internal/platform/i18n/catalog"
)

// Namespace is the locale catalog namespace holding error messages.
const Namespace = "errors"

// Code is a machine-readable error code (kept as a string to avoid an import
// cycle with the errors package).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale    string
	messages  map[Code]string
	templates sync.Map // Code -> *template.Template
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}
)

// GetCatalog returns the catalog that best serves locale, falling back to
// the base locale.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}
	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	bundle := i18ncatalog.Default()
	resolved, messages := bundle.NamespaceMessagesWithFallback(bundle.MatchLocale(requested), Namespace)
	if c, ok := lookupCatalog(resolved); ok {
		return c
	}
	return storeCatalogIfAbsent(resolved, NewCatalog(resolved, messages))
}

// NewCatalog creates a catalog with the given locale and message templates.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	return &Catalog{
		locale:   locale,
		messages: maps.Clone(messages),
	}
}

// RegisterCatalog installs cat for locale, replacing any existing catalog.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template for code with metadata.
// A missing template yields the code itself; a broken template yields the
// raw template text. Missing metadata keys render as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	tmpl, err := c.template(code, raw)
	if err != nil {
		return raw
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, metadata); err != nil {
		return raw
	}
	return sb.String()
}

func (c *Catalog) template(code Code, raw string) (*template.Template, error) {
	if cached, ok := c.templates.Load(code); ok {
		return cached.(*template.Template), nil
	}
	parsed, err := template.New(code).Parse(raw)
	if err != nil {
		return nil, err
	}
	c.templates.Store(code, parsed)
	return parsed, nil
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
