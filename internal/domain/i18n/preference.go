package i18n

import (
	"context"
	"errors"
	"strings"

	"paseos-lugo/internal/ports/clientstate"
)

var ErrUnsupported = errors.New("unsupported language")

// Preference es el idioma elegido por el visitante, persistido.
type Preference struct {
	catalog  *Catalog
	state    clientstate.Scope
	fallback string
}

func NewPreference(c *Catalog, state clientstate.Scope, fallback string) *Preference {
	if !c.Supports(fallback) {
		fallback = DefaultLanguage
	}
	return &Preference{catalog: c, state: state, fallback: fallback}
}

// Get nunca falla: ante cualquier problema vuelve al idioma por defecto.
func (p *Preference) Get(ctx context.Context) string {
	v, err := p.state.Get(ctx, clientstate.KeyLanguage)
	if err != nil || !p.catalog.Supports(v) {
		return p.fallback
	}
	return v
}

func (p *Preference) Set(ctx context.Context, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !p.catalog.Supports(lang) {
		return ErrUnsupported
	}
	return p.state.Set(ctx, clientstate.KeyLanguage, lang, 0)
}
