package middleware

import (
	"net/http"
	"strings"

	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/domain/session"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/ports/clientstate"
)

// LocationHeader lleva la URL completa del navegador (con fragmento). Si trae
// session_id del login federado, la respuesta devuelve la URL ya limpia.
const LocationHeader = "X-Client-Location"

// Session resuelve el Store del visitante y lo arranca antes del handler.
// Un fallo transitorio validando el token no corta el request.
func Session(mgr *session.Manager, log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID, ok := VisitorID(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			store := mgr.For(visitorID)

			location := strings.TrimSpace(r.Header.Get(LocationHeader))
			cleaned, err := store.Bootstrap(r.Context(), location)
			if err != nil {
				log.Warn("session bootstrap failed", map[string]any{
					"visitor_id": visitorID,
					"err":        err,
				})
			}
			if location != "" && cleaned != location {
				w.Header().Set(LocationHeader, cleaned)
			}

			next.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), store)))
		})
	}
}

// Language fija el idioma del visitante en el contexto.
func Language(c *i18n.Catalog, state clientstate.Store, fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := fallback
			if visitorID, ok := VisitorID(r.Context()); ok {
				pref := i18n.NewPreference(c, clientstate.Scope{Store: state, VisitorID: visitorID}, fallback)
				lang = pref.Get(r.Context())
			}
			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), c, lang)))
		})
	}
}

// State devuelve el estado de cliente del visitante del request.
func State(r *http.Request, store clientstate.Store) clientstate.Scope {
	id, _ := VisitorID(r.Context())
	return clientstate.Scope{Store: store, VisitorID: id}
}

// Token devuelve el bearer de la sesión del request ("" si es anónimo).
func Token(r *http.Request) string {
	if s, ok := session.FromContext(r.Context()); ok {
		return s.Token()
	}
	return ""
}
