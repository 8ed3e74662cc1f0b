package tracking

import (
	"encoding/json"
	"errors"
	"net/http"

	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/middleware"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/platform/wsstream"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, tr *Tracker, log logger.Logger) {
	r.Route("/seguimiento/{bookingID}", func(sr chi.Router) {
		sr.Get("/", snapshotHandler(tr))
		// Refresco en vivo cada intervalo; cerrar el socket detiene el timer.
		sr.Get("/ws", streamHandler(tr, log))
	})
}

// snapshotHandler hace una única lectura (primera pintura de la página).
func snapshotHandler(tr *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		token := middleware.Token(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
			return
		}

		snap, err := tr.Fetch(r.Context(), token, chi.URLParam(r, "bookingID"))
		if err != nil {
			writeFetchError(w, t, err)
			return
		}
		writeJSON(w, http.StatusOK, BuildView(snap, tr.MapsKey(r.Context())))
	}
}

func streamHandler(tr *Tracker, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.From(r.Context())
		token := middleware.Token(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
			return
		}
		bookingID := chi.URLParam(r, "bookingID")
		visitorID, _ := middleware.VisitorID(r.Context())

		stream, err := wsstream.Upgrade(w, r)
		if err != nil {
			log.Warn("tracking stream upgrade failed", map[string]any{"err": err})
			return
		}
		defer stream.Close()

		watch := tr.Start(stream.Context(), visitorID+":"+bookingID, token, bookingID, Callbacks{
			OnView: func(v View) { _ = stream.Send("walk", v) },
			OnError: func(error) {
				_ = stream.Send("error", map[string]string{"error": t("tracking.error")})
			},
		})
		defer watch.Stop()

		select {
		case <-watch.Done():
		case <-stream.Done():
		}
	}
}

func writeFetchError(w http.ResponseWriter, t i18n.Translator, err error) {
	switch {
	case errors.Is(err, booking.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, t("errors.unauthorized"))
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, t("errors.notFound"))
	default:
		writeError(w, http.StatusBadGateway, t("tracking.error"))
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
