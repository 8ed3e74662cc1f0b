package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/contacto", sendHandler(svc))
}

type sendResponse struct {
	OK    bool   `json:"ok"`
	Toast string `json:"toast"`
}

func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())

		var m Message
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			writeJSON(w, http.StatusBadRequest, sendResponse{Toast: "invalid json"})
			return
		}

		err := svc.Send(r.Context(), m)
		switch {
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusUnprocessableEntity, sendResponse{Toast: t("contact.error")})
		case err != nil:
			writeJSON(w, http.StatusBadGateway, sendResponse{Toast: t("contact.error")})
		default:
			writeJSON(w, http.StatusOK, sendResponse{OK: true, Toast: t("contact.success")})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
