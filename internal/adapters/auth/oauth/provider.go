package oauth

import (
	"net/url"
	"strings"

	"paseos-lugo/internal/ports/auth"
)

const DefaultBaseURL = "https://auth.emergentagent.com"

// Provider arma la salida al login federado. El proveedor vuelve a
// returnTo con #session_id=... en el fragmento.
type Provider struct {
	baseURL string
}

func NewProvider(baseURL string) *Provider {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{baseURL: baseURL}
}

var _ auth.LoginProvider = (*Provider)(nil)

func (p *Provider) LoginURL(returnTo string) string {
	return p.baseURL + "/?redirect=" + url.QueryEscape(returnTo)
}
