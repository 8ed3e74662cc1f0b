package dogs

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

// TokenFunc extrae el token de la sesión del request.
type TokenFunc func(r *http.Request) string

func RegisterRoutes(r chi.Router, svc *Service, token TokenFunc) {
	// Alta de perro desde Mis reservas / Perfil
	r.Post("/mis-reservas/perros", createDogHandler(svc, token))
}

type createDogResponse struct {
	Dog   Dog    `json:"dog"`
	Toast string `json:"toast"`
}

func createDogHandler(svc *Service, token TokenFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())

		var in CreateInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		dog, err := svc.Register(r.Context(), token(r), in)
		switch {
		case errors.Is(err, ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
			return
		case errors.Is(err, ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusBadGateway, t("errors.generic"))
			return
		}
		writeJSON(w, http.StatusCreated, createDogResponse{Dog: dog, Toast: t("profile.petAdded")})
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
