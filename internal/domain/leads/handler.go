package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/reserva-rapida", submitHandler(svc))
}

func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}

		err := svc.Submit(r.Context(), req)
		switch {
		case errors.Is(err, ErrMissingSchedule), errors.Is(err, ErrMissingContact):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		case err != nil:
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": t("leads.error")})
		default:
			writeJSON(w, http.StatusCreated, map[string]string{"toast": t("leads.success")})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
