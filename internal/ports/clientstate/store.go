package clientstate

import (
	"context"
	"errors"
	"time"
)

// Claves persistidas por visitante. Equivalen a lo que el navegador guardaría
// en local/session storage.
const (
	KeyToken        = "token"
	KeyLanguage     = "language"
	KeyBookingDraft = "booking_draft"
)

var (
	ErrNotFound   = errors.New("clientstate: not found")
	ErrInvalidKey = errors.New("clientstate: visitor id and key required")
)

// Store guarda pares clave/valor por visitante. ttl <= 0 => sin expiración.
type Store interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Set(ctx context.Context, visitorID, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, visitorID, key string) error
}

// Scope fija el visitante para no arrastrar el id por todas las capas.
type Scope struct {
	Store     Store
	VisitorID string
}

func (s Scope) Get(ctx context.Context, key string) (string, error) {
	return s.Store.Get(ctx, s.VisitorID, key)
}

func (s Scope) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.Store.Set(ctx, s.VisitorID, key, value, ttl)
}

func (s Scope) Delete(ctx context.Context, key string) error {
	return s.Store.Delete(ctx, s.VisitorID, key)
}
