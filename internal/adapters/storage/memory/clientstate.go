package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"paseos-lugo/internal/ports/clientstate"
)

type stateEntry struct {
	value     string
	expiresAt time.Time // zero => sin expiración
}

type ClientState struct {
	mu    sync.RWMutex
	byKey map[string]stateEntry
	now   func() time.Time
}

func NewClientState() *ClientState {
	return &ClientState{
		byKey: make(map[string]stateEntry),
		now:   time.Now,
	}
}

var _ clientstate.Store = (*ClientState)(nil)

func stateKey(visitorID, key string) string {
	return visitorID + "\x00" + key
}

func (s *ClientState) Get(ctx context.Context, visitorID, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.byKey[stateKey(visitorID, key)]
	s.mu.RUnlock()

	if !ok {
		return "", clientstate.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		delete(s.byKey, stateKey(visitorID, key))
		s.mu.Unlock()
		return "", clientstate.ErrNotFound
	}
	return e.value, nil
}

func (s *ClientState) Set(ctx context.Context, visitorID, key, value string, ttl time.Duration) error {
	if strings.TrimSpace(visitorID) == "" || strings.TrimSpace(key) == "" {
		return clientstate.ErrInvalidKey
	}
	e := stateEntry{value: value}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[stateKey(visitorID, key)] = e
	return nil
}

func (s *ClientState) Delete(ctx context.Context, visitorID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byKey, stateKey(visitorID, key))
	return nil
}

// Purge elimina entradas vencidas. Devuelve cuántas borró.
func (s *ClientState) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, e := range s.byKey {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.byKey, k)
			n++
		}
	}
	return n
}
