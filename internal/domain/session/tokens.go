package session

import (
	"context"
	"errors"

	"paseos-lugo/internal/ports/clientstate"
)

// ScopeTokens persiste el token en el estado de cliente del visitante.
type ScopeTokens struct {
	State clientstate.Scope
}

func (t ScopeTokens) LoadToken(ctx context.Context) (string, error) {
	v, err := t.State.Get(ctx, clientstate.KeyToken)
	if errors.Is(err, clientstate.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func (t ScopeTokens) SaveToken(ctx context.Context, token string) error {
	return t.State.Set(ctx, clientstate.KeyToken, token, 0)
}

func (t ScopeTokens) ClearToken(ctx context.Context) error {
	err := t.State.Delete(ctx, clientstate.KeyToken)
	if errors.Is(err, clientstate.ErrNotFound) {
		return nil
	}
	return err
}
