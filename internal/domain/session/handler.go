package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/i18n"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Dogs *dogs.Service
	// Origin es el origen público al que vuelve el login federado.
	Origin string
}

func RegisterRoutes(r chi.Router, d HandlerDeps) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler())
		ar.Post("/registro", registerHandler())
		ar.Post("/salir", logoutHandler())
		ar.Get("/google", googleHandler(d.Origin))
		ar.Get("/yo", meHandler())
		ar.Post("/sesion", bootstrapHandler())
	})

	r.Get("/perfil", profileHandler(d.Dogs))
	r.Patch("/perfil", updateProfileHandler())
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          *User  `json:"user"`
	Location      string `json:"location,omitempty"`
}

func currentStore(w http.ResponseWriter, r *http.Request) (*Store, bool) {
	s, ok := FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return s, true
}

func loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		var in Credentials
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if _, err := s.Login(r.Context(), in.Email, in.Password); err != nil {
			writeAuthError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, User: s.User()})
	}
}

func registerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		var in Registration
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if _, err := s.Register(r.Context(), in); err != nil {
			writeAuthError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, sessionResponse{Authenticated: true, User: s.User()})
	}
}

func logoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		s.Logout(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func googleHandler(origin string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		http.Redirect(w, r, s.GoogleLoginURL(origin), http.StatusSeeOther)
	}
}

func meHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: s.Authenticated(), User: s.User()})
	}
}

// bootstrapHandler recibe la URL del navegador (con fragmento) cuando el
// shell no puede mandarla en la cabecera.
func bootstrapHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		var in struct {
			Location string `json:"location"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		loc, err := s.Bootstrap(r.Context(), in.Location)
		if err != nil {
			writeError(w, http.StatusBadGateway, i18n.From(r.Context())("errors.generic"))
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: s.Authenticated(), User: s.User(), Location: loc})
	}
}

type profileResponse struct {
	User *User      `json:"user"`
	Dogs []dogs.Dog `json:"dogs"`
}

func profileHandler(dogsSvc *dogs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		if !ok || s.Token() == "" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		myDogs, err := dogsSvc.ListMine(r.Context(), s.Token())
		if err != nil || myDogs == nil {
			// Igual que la página: sin mascotas si la lista falla.
			myDogs = []dogs.Dog{}
		}
		writeJSON(w, http.StatusOK, profileResponse{User: s.User(), Dogs: myDogs})
	}
}

func updateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := currentStore(w, r)
		if !ok {
			return
		}
		var in ProfileInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := s.UpdateProfile(r.Context(), in)
		if err != nil {
			writeAuthError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": u, "toast": i18n.From(r.Context())("profile.saved")})
	}
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	t := i18n.From(r.Context())
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
	default:
		writeError(w, http.StatusBadGateway, t("errors.generic"))
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
