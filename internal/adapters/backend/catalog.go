package backend

import (
	"context"

	"paseos-lugo/internal/domain/dogs"
	"paseos-lugo/internal/domain/leads"
	"paseos-lugo/internal/domain/walkers"
)

var (
	_ walkers.Source  = (*Client)(nil)
	_ dogs.Repository = (*Client)(nil)
	_ leads.Sink      = (*Client)(nil)
)

func (c *Client) ListWalkers(ctx context.Context) ([]walkers.Walker, error) {
	var out []walkers.Walker
	if err := c.get(ctx, "/api/walkers", "", &out); err != nil {
		return nil, mapErr(err, nil, nil)
	}
	return out, nil
}

func (c *Client) GetWalker(ctx context.Context, id string) (walkers.Walker, error) {
	var out walkers.Walker
	err := c.get(ctx, "/api/walkers/"+seg(id), "", &out)
	return out, mapErr(err, nil, walkers.ErrNotFound)
}

func (c *Client) ListDogs(ctx context.Context, token string) ([]dogs.Dog, error) {
	var out []dogs.Dog
	if err := c.get(ctx, "/api/dogs", token, &out); err != nil {
		return nil, mapErr(err, dogs.ErrUnauthorized, nil)
	}
	return out, nil
}

func (c *Client) CreateDog(ctx context.Context, token string, in dogs.CreateInput) (dogs.Dog, error) {
	var out dogs.Dog
	err := c.send(ctx, "POST", "/api/dogs", token, in, &out)
	return out, mapErr(err, dogs.ErrUnauthorized, nil)
}

func (c *Client) CreateLead(ctx context.Context, r leads.Request) error {
	return mapErr(c.send(ctx, "POST", "/api/simple-bookings", "", r, nil), nil, nil)
}
