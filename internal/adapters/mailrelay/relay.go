// Package mailrelay entrega los mensajes de /contacto.
package mailrelay

import (
	"context"
	"time"

	"paseos-lugo/internal/domain/contact"
	"paseos-lugo/internal/platform/httpclient"
	"paseos-lugo/internal/platform/logger"
)

// HTTPRelay hace POST {base}/api/contact.
type HTTPRelay struct {
	http *httpclient.Client
}

func NewHTTPRelay(baseURL string, timeout time.Duration) (*HTTPRelay, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &HTTPRelay{http: hc}, nil
}

var _ contact.Relay = (*HTTPRelay)(nil)

func (r *HTTPRelay) Send(ctx context.Context, m contact.Message) error {
	return r.http.DoJSON(ctx, "POST", "/api/contact", nil, m, nil)
}

// LogRelay se usa cuando no hay relay configurado: deja el mensaje en el log.
type LogRelay struct {
	Log logger.Logger
}

func (r LogRelay) Send(_ context.Context, m contact.Message) error {
	r.Log.Info("contact message (no relay configured)", map[string]any{
		"email":   m.Email,
		"subject": m.Subject,
		"length":  len(m.Message),
	})
	return nil
}

// New elige HTTPRelay si hay URL y LogRelay si no.
func New(baseURL string, timeout time.Duration, log logger.Logger) (contact.Relay, error) {
	if baseURL == "" {
		if log == nil {
			log = logger.Nop()
		}
		return LogRelay{Log: log}, nil
	}
	return NewHTTPRelay(baseURL, timeout)
}
