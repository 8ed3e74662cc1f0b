package booking

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("booking not found")

// Service cubre /mis-reservas: listar, ver y cancelar.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) ListMine(ctx context.Context, token string) ([]Booking, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	return s.api.ListBookings(ctx, token)
}

func (s *Service) Get(ctx context.Context, token, id string) (Booking, error) {
	if strings.TrimSpace(token) == "" {
		return Booking{}, ErrUnauthorized
	}
	return s.api.GetBooking(ctx, token, id)
}

// Cancel delega la política de reembolso en el backend.
func (s *Service) Cancel(ctx context.Context, token, id string) (Cancellation, error) {
	if strings.TrimSpace(token) == "" {
		return Cancellation{}, ErrUnauthorized
	}
	return s.api.CancelBooking(ctx, token, id)
}
