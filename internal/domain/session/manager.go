package session

import (
	"context"
	"sync"
	"time"
)

// Manager mantiene un Store por visitante.
type Manager struct {
	newStore func(visitorID string) *Store
	now      func() time.Time

	mu     sync.Mutex
	stores map[string]*entry
}

type entry struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(newStore func(visitorID string) *Store) *Manager {
	return &Manager{
		newStore: newStore,
		now:      time.Now,
		stores:   map[string]*entry{},
	}
}

// For devuelve el Store del visitante, creándolo si hace falta.
func (m *Manager) For(visitorID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.stores[visitorID]
	if !ok {
		e = &entry{store: m.newStore(visitorID)}
		m.stores[visitorID] = e
	}
	e.lastSeen = m.now()
	return e.store
}

func (m *Manager) Forget(visitorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, visitorID)
}

// Sweep olvida los stores inactivos desde hace más de idle. El token sigue
// persistido; el próximo acceso revalida con /auth/me.
func (m *Manager) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-idle)
	n := 0
	for id, e := range m.stores {
		if e.lastSeen.Before(cutoff) {
			delete(m.stores, id)
			n++
		}
	}
	return n
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

type ctxKey struct{}

func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}
