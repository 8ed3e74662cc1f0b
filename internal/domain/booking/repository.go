package booking

import "context"

// API es la parte del backend que usa el flujo de reserva.
type API interface {
	CreateBooking(ctx context.Context, token string, in CreateRequest) (Booking, error)
	CreateCheckoutSession(ctx context.Context, token string, in CheckoutRequest) (CheckoutSession, error)
	ListBookings(ctx context.Context, token string) ([]Booking, error)
	GetBooking(ctx context.Context, token, id string) (Booking, error)
	CancelBooking(ctx context.Context, token, id string) (Cancellation, error)
}
