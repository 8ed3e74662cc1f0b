package messages

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/mensajes", inboxHandler(svc))
	r.Post("/mensajes/{messageID}/leido", markReadHandler(svc))
}

func inboxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := svc.Inbox(r.Context(), middleware.Token(r))
		switch {
		case errors.Is(err, ErrUnauthorized):
			// Sin sesión la página vuelve a la portada.
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		case err != nil:
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": i18n.From(r.Context())("errors.generic")})
			return
		}
		writeJSON(w, http.StatusOK, in)
	}
}

func markReadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.MarkRead(r.Context(), middleware.Token(r), chi.URLParam(r, "messageID"))
		switch {
		case errors.Is(err, ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": i18n.From(r.Context())("errors.unauthorized")})
			return
		case err != nil:
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": i18n.From(r.Context())("errors.generic")})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
