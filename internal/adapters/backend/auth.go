package backend

import (
	"context"

	"paseos-lugo/internal/domain/session"
)

var _ session.AuthAPI = (*Client)(nil)

func (c *Client) Login(ctx context.Context, in session.Credentials) (session.AuthResponse, error) {
	var out session.AuthResponse
	err := c.send(ctx, "POST", "/api/auth/login", "", in, &out)
	return out, mapErr(err, session.ErrUnauthorized, nil)
}

func (c *Client) Register(ctx context.Context, in session.Registration) (session.AuthResponse, error) {
	var out session.AuthResponse
	err := c.send(ctx, "POST", "/api/auth/register", "", in, &out)
	return out, mapErr(err, session.ErrUnauthorized, nil)
}

func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (session.AuthResponse, error) {
	var out session.AuthResponse
	err := c.http.DoJSON(ctx, "POST", "/api/auth/session",
		map[string]string{"X-Session-ID": sessionID}, struct{}{}, &out)
	return out, mapErr(err, session.ErrUnauthorized, nil)
}

func (c *Client) Me(ctx context.Context, token string) (session.User, error) {
	var out session.User
	err := c.get(ctx, "/api/auth/me", token, &out)
	return out, mapErr(err, session.ErrUnauthorized, nil)
}

func (c *Client) UpdateMe(ctx context.Context, token string, in session.ProfileInput) error {
	err := c.send(ctx, "PATCH", "/api/auth/me", token, in, nil)
	return mapErr(err, session.ErrUnauthorized, nil)
}

func (c *Client) Logout(ctx context.Context, token string) error {
	err := c.send(ctx, "POST", "/api/auth/logout", token, nil, nil)
	return mapErr(err, session.ErrUnauthorized, nil)
}
