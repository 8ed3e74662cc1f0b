package payment

import (
	"encoding/json"
	"net/http"

	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/middleware"
	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/platform/wsstream"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, p *Poller, log logger.Logger) {
	// Vuelta desde la pasarela: /pago-exitoso?session_id=cs_...
	r.Get("/pago-exitoso", confirmHandler(p))
	r.Get("/pago-exitoso/ws", streamHandler(p, log))
}

// pageResponse es View con los textos ya resueltos en el idioma del visitante.
type pageResponse struct {
	View
	Title   string `json:"title"`
	Message string `json:"message"`
}

func render(v View, t i18n.Translator) pageResponse {
	actions := make([]Action, len(v.Actions))
	for i, a := range v.Actions {
		actions[i] = Action{Label: t(a.Label), Href: a.Href}
	}
	v.Actions = actions
	return pageResponse{View: v, Title: t(v.TitleKey), Message: t(v.MessageKey)}
}

func viewKey(r *http.Request) string {
	id, _ := middleware.VisitorID(r.Context())
	return id + ":pago-exitoso"
}

// confirmHandler hace long-poll: responde con el estado terminal o, si el
// cliente se va antes, con el último estado conocido.
func confirmHandler(p *Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")
		run := p.StartView(r.Context(), viewKey(r), sessionID, middleware.Token(r), nil)
		defer run.Stop()

		snap := run.Wait(r.Context())
		writeJSON(w, http.StatusOK, render(BuildView(snap), i18n.From(r.Context())))
	}
}

// streamHandler empuja cada intento por WebSocket y cierra al llegar a un
// estado terminal. Cerrar el socket detiene el poller.
func streamHandler(p *Poller, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")
		token := middleware.Token(r)
		t := i18n.From(r.Context())
		key := viewKey(r)

		stream, err := wsstream.Upgrade(w, r)
		if err != nil {
			log.Warn("payment stream upgrade failed", map[string]any{"err": err})
			return
		}
		defer stream.Close()

		run := p.StartView(stream.Context(), key, sessionID, token, func(s Snapshot) {
			_ = stream.Send("payment", render(BuildView(s), t))
		})
		defer run.Stop()

		select {
		case <-run.Done():
		case <-stream.Done():
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
