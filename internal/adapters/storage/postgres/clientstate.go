package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"paseos-lugo/internal/ports/clientstate"
)

const schema = `
CREATE TABLE IF NOT EXISTS client_state (
	visitor_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	expires_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (visitor_id, key)
)`

type ClientStateRepo struct {
	db  Querier
	now func() time.Time
}

func NewClientStateRepo(db Querier) *ClientStateRepo {
	return &ClientStateRepo{db: db, now: time.Now}
}

var _ clientstate.Store = (*ClientStateRepo)(nil)

// Migrate crea la tabla si no existe.
func (r *ClientStateRepo) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schema)
	return err
}

func (r *ClientStateRepo) Get(ctx context.Context, visitorID, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, `
		SELECT value
		FROM client_state
		WHERE visitor_id = $1 AND key = $2
		  AND (expires_at IS NULL OR expires_at > $3)
	`, visitorID, key, r.now()).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", clientstate.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *ClientStateRepo) Set(ctx context.Context, visitorID, key, value string, ttl time.Duration) error {
	if strings.TrimSpace(visitorID) == "" || strings.TrimSpace(key) == "" {
		return clientstate.ErrInvalidKey
	}
	now := r.now()
	var expiresAt *time.Time
	if ttl > 0 {
		t := now.Add(ttl)
		expiresAt = &t
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO client_state (visitor_id, key, value, expires_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (visitor_id, key) DO UPDATE
		SET value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`, visitorID, key, value, expiresAt, now)
	return err
}

func (r *ClientStateRepo) Delete(ctx context.Context, visitorID, key string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM client_state WHERE visitor_id = $1 AND key = $2
	`, visitorID, key)
	return err
}

// Purge borra filas vencidas.
func (r *ClientStateRepo) Purge(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM client_state WHERE expires_at IS NOT NULL AND expires_at <= $1
	`, r.now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
