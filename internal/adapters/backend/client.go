// Package backend implementa los puertos de dominio sobre la API REST
// (/api/*). Un único cliente HTTP sirve a todos los dominios.
package backend

import (
	"context"
	"net/url"
	"time"

	"paseos-lugo/internal/platform/httpclient"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	// Observe es opcional (métricas por request).
	Observe httpclient.ObserveFunc
}

type Client struct {
	http *httpclient.Client
}

func New(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	hc.Observe = cfg.Observe
	return &Client{http: hc}, nil
}

// NewWithHTTP permite inyectar un httpclient ya armado (tests).
func NewWithHTTP(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.http.DoJSON(ctx, "GET", path, httpclient.Bearer(token), nil, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, in, out any) error {
	if in == nil {
		in = struct{}{}
	}
	return c.http.DoJSON(ctx, method, path, httpclient.Bearer(token), in, out)
}

func seg(id string) string { return url.PathEscape(id) }
