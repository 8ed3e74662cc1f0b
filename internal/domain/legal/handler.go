package legal

import (
	"encoding/json"
	"net/http"

	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router) {
	for _, slug := range Slugs() {
		r.Get("/"+slug, pageHandler(slug))
	}
}

func pageHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := Render(slug, i18n.From(r.Context()))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(p)
	}
}
