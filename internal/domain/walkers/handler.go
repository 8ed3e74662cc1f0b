package walkers

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/paseadores", listWalkersHandler(svc))
	r.Get("/paseador/{walkerID}", getWalkerHandler(svc))
}

// GET /paseadores?search=...&location=...
func listWalkersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		cat, err := svc.Browse(r.Context(), Criteria{
			Search:   q.Get("search"),
			Location: q.Get("location"),
		})
		if err != nil {
			writeError(w, http.StatusBadGateway, i18n.From(r.Context())("errors.generic"))
			return
		}
		writeJSON(w, http.StatusOK, cat)
	}
}

func getWalkerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		wk, err := svc.Get(r.Context(), chi.URLParam(r, "walkerID"))
		switch {
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, t("errors.notFound"))
			return
		case err != nil:
			writeError(w, http.StatusBadGateway, t("errors.generic"))
			return
		}
		writeJSON(w, http.StatusOK, wk)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
