package backend

import (
	"context"

	"paseos-lugo/internal/domain/booking"
	"paseos-lugo/internal/domain/payment"
	"paseos-lugo/internal/domain/tracking"
)

var (
	_ booking.API        = (*Client)(nil)
	_ tracking.Source    = (*Client)(nil)
	_ payment.StatusFunc = (*Client)(nil).CheckoutStatus
)

func (c *Client) CreateBooking(ctx context.Context, token string, in booking.CreateRequest) (booking.Booking, error) {
	var out booking.Booking
	err := c.send(ctx, "POST", "/api/bookings", token, in, &out)
	return out, mapErr(err, booking.ErrUnauthorized, nil)
}

func (c *Client) CreateCheckoutSession(ctx context.Context, token string, in booking.CheckoutRequest) (booking.CheckoutSession, error) {
	var out booking.CheckoutSession
	err := c.send(ctx, "POST", "/api/payments/checkout/session", token, in, &out)
	return out, mapErr(err, booking.ErrUnauthorized, booking.ErrNotFound)
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]booking.Booking, error) {
	var out []booking.Booking
	if err := c.get(ctx, "/api/bookings", token, &out); err != nil {
		return nil, mapErr(err, booking.ErrUnauthorized, nil)
	}
	return out, nil
}

func (c *Client) GetBooking(ctx context.Context, token, id string) (booking.Booking, error) {
	var out booking.Booking
	err := c.get(ctx, "/api/bookings/"+seg(id), token, &out)
	return out, mapErr(err, booking.ErrUnauthorized, booking.ErrNotFound)
}

func (c *Client) CancelBooking(ctx context.Context, token, id string) (booking.Cancellation, error) {
	var out booking.Cancellation
	err := c.send(ctx, "PATCH", "/api/bookings/"+seg(id)+"/cancel", token, nil, &out)
	return out, mapErr(err, booking.ErrUnauthorized, booking.ErrNotFound)
}

// CheckoutStatus encaja con payment.StatusFunc. El token es opcional.
func (c *Client) CheckoutStatus(ctx context.Context, token, sessionID string) (payment.CheckoutStatus, error) {
	var out payment.CheckoutStatus
	err := c.get(ctx, "/api/payments/checkout/status/"+seg(sessionID), token, &out)
	return out, mapErr(err, nil, nil)
}

func (c *Client) GetWalk(ctx context.Context, bookingID string) (tracking.Walk, error) {
	var out tracking.Walk
	err := c.get(ctx, "/api/walks/"+seg(bookingID), "", &out)
	return out, mapErr(err, nil, tracking.ErrNotFound)
}

func (c *Client) PublicConfig(ctx context.Context) (tracking.MapsConfig, error) {
	var out tracking.MapsConfig
	err := c.get(ctx, "/api/config", "", &out)
	return out, mapErr(err, nil, nil)
}
