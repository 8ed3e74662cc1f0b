package i18n

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/ports/clientstate"

	"github.com/go-chi/chi/v5"
)

// ScopeFunc resuelve el estado de cliente del visitante del request.
type ScopeFunc func(r *http.Request) clientstate.Scope

func RegisterRoutes(r chi.Router, c *Catalog, scope ScopeFunc, fallback string) {
	r.Get("/idioma", getLanguageHandler(c))
	r.Post("/idioma", setLanguageHandler(c, scope, fallback))
}

type languageResponse struct {
	Language  string   `json:"language"`
	Languages []string `json:"languages"`
}

func getLanguageHandler(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, languageResponse{Language: Language(r.Context()), Languages: c.Languages()})
	}
}

func setLanguageHandler(c *Catalog, scope ScopeFunc, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Language string `json:"language"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}

		pref := NewPreference(c, scope(r), fallback)
		if err := pref.Set(r.Context(), in.Language); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrUnsupported) {
				status = http.StatusUnprocessableEntity
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, languageResponse{Language: pref.Get(r.Context()), Languages: c.Languages()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
