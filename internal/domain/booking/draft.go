package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"paseos-lugo/internal/ports/clientstate"
)

// Draft es lo que la portada deja para el listado de paseadores y el wizard.
// Es volátil: vive lo que dure la sesión del visitante (TTL).
type Draft struct {
	ServiceType ServiceType `json:"service_type"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
}

type DraftStore struct {
	state clientstate.Scope
	ttl   time.Duration
}

func NewDraftStore(state clientstate.Scope, ttl time.Duration) *DraftStore {
	return &DraftStore{state: state, ttl: ttl}
}

func (s *DraftStore) Save(ctx context.Context, d Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.state.Set(ctx, clientstate.KeyBookingDraft, string(b), s.ttl)
}

// Load devuelve nil sin error cuando no hay borrador.
func (s *DraftStore) Load(ctx context.Context) (*Draft, error) {
	raw, err := s.state.Get(ctx, clientstate.KeyBookingDraft)
	if errors.Is(err, clientstate.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		// Borrador corrupto: se descarta.
		_ = s.state.Delete(ctx, clientstate.KeyBookingDraft)
		return nil, nil
	}
	return &d, nil
}

func (s *DraftStore) Clear(ctx context.Context) error {
	return s.state.Delete(ctx, clientstate.KeyBookingDraft)
}
