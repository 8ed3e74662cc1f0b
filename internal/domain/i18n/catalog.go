// Package i18n resuelve textos por clave con puntos ("payment.success.title")
// sobre un catálogo anidado por idioma.
package i18n

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultLanguage = "es"

//go:embed catalog.yaml
var embedded []byte

// Catalog es inmutable tras Load.
type Catalog struct {
	tree  map[string]any
	langs []string
}

// Load exige un mapa por idioma en el primer nivel.
func Load(data []byte) (*Catalog, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("i18n: parse catalog: %w", err)
	}
	if len(tree) == 0 {
		return nil, fmt.Errorf("i18n: empty catalog")
	}
	langs := make([]string, 0, len(tree))
	for lang, node := range tree {
		m, ok := node.(map[string]any)
		if !ok || len(m) == 0 {
			return nil, fmt.Errorf("i18n: language %q is not a mapping", lang)
		}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return &Catalog{tree: tree, langs: langs}, nil
}

// Default es el catálogo embebido (es, en, gl).
func Default() *Catalog {
	c, err := Load(embedded)
	if err != nil {
		panic(err)
	}
	return c
}

// T devuelve la clave literal si falta algún segmento, si la hoja no es
// texto o si el texto está vacío.
func (c *Catalog) T(lang, key string) string {
	var node any = c.tree[lang]
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return key
		}
		node, ok = m[part]
		if !ok {
			return key
		}
	}
	s, ok := node.(string)
	if !ok || s == "" {
		return key
	}
	return s
}

func (c *Catalog) Supports(lang string) bool {
	_, ok := c.tree[lang].(map[string]any)
	return ok
}

func (c *Catalog) Languages() []string {
	return append([]string(nil), c.langs...)
}

// Translator fija el idioma para no pasarlo en cada llamada.
type Translator func(key string) string

func (c *Catalog) For(lang string) Translator {
	return func(key string) string { return c.T(lang, key) }
}

type ctxKey struct{}

type ctxValue struct {
	lang string
	t    Translator
}

// WithLanguage deja idioma y traductor en el contexto del request.
func WithLanguage(ctx context.Context, c *Catalog, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ctxValue{lang: lang, t: c.For(lang)})
}

// Language devuelve el idioma del request o DefaultLanguage.
func Language(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(ctxValue); ok {
		return v.lang
	}
	return DefaultLanguage
}

// From devuelve el traductor del request; sin middleware, devuelve la clave.
func From(ctx context.Context) Translator {
	if v, ok := ctx.Value(ctxKey{}).(ctxValue); ok {
		return v.t
	}
	return func(key string) string { return key }
}
