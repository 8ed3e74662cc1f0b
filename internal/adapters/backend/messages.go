package backend

import (
	"context"

	"paseos-lugo/internal/domain/messages"
)

var _ messages.Source = (*Client)(nil)

func (c *Client) ListMessages(ctx context.Context, token string) ([]messages.Message, error) {
	var out []messages.Message
	if err := c.get(ctx, "/api/messages", token, &out); err != nil {
		return nil, mapErr(err, messages.ErrUnauthorized, nil)
	}
	return out, nil
}

func (c *Client) UnreadCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := c.get(ctx, "/api/messages/unread-count", token, &out)
	return out.Count, mapErr(err, messages.ErrUnauthorized, nil)
}

func (c *Client) MarkRead(ctx context.Context, token, id string) error {
	err := c.send(ctx, "PATCH", "/api/messages/"+seg(id)+"/read", token, nil, nil)
	return mapErr(err, messages.ErrUnauthorized, nil)
}
