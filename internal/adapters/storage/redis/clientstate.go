package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"paseos-lugo/internal/ports/clientstate"
)

const keyPrefix = "paseos"

type ClientState struct {
	rdb *goredis.Client
}

func NewClientState(rdb *goredis.Client) *ClientState {
	return &ClientState{rdb: rdb}
}

var _ clientstate.Store = (*ClientState)(nil)

// Connect devuelve nil si addr viene vacío.
func Connect(addr, password string) *goredis.Client {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})
}

func redisKey(visitorID, key string) string {
	return keyPrefix + ":" + visitorID + ":" + key
}

func (s *ClientState) Get(ctx context.Context, visitorID, key string) (string, error) {
	v, err := s.rdb.Get(ctx, redisKey(visitorID, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", clientstate.ErrNotFound
	}
	return v, err
}

func (s *ClientState) Set(ctx context.Context, visitorID, key, value string, ttl time.Duration) error {
	if strings.TrimSpace(visitorID) == "" || strings.TrimSpace(key) == "" {
		return clientstate.ErrInvalidKey
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.rdb.Set(ctx, redisKey(visitorID, key), value, ttl).Err()
}

func (s *ClientState) Delete(ctx context.Context, visitorID, key string) error {
	return s.rdb.Del(ctx, redisKey(visitorID, key)).Err()
}
