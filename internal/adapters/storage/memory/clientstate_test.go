package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"paseos-lugo/internal/ports/clientstate"
)

func TestClientState_SetGetDelete(t *testing.T) {
	s := NewClientState()
	ctx := context.Background()

	if _, err := s.Get(ctx, "v1", clientstate.KeyToken); !errors.Is(err, clientstate.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Set(ctx, "v1", clientstate.KeyToken, "abc", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "v1", clientstate.KeyToken)
	if err != nil || got != "abc" {
		t.Fatalf("got %q err=%v", got, err)
	}

	// otro visitante no ve el valor
	if _, err := s.Get(ctx, "v2", clientstate.KeyToken); !errors.Is(err, clientstate.ErrNotFound) {
		t.Fatalf("expected isolation between visitors")
	}

	if err := s.Delete(ctx, "v1", clientstate.KeyToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "v1", clientstate.KeyToken); !errors.Is(err, clientstate.ErrNotFound) {
		t.Fatalf("expected deleted")
	}
}

func TestClientState_TTL(t *testing.T) {
	s := NewClientState()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Set(ctx, "v1", clientstate.KeyBookingDraft, "{}", time.Minute)
	_ = s.Set(ctx, "v1", clientstate.KeyLanguage, "gl", 0)

	now = now.Add(59 * time.Second)
	if _, err := s.Get(ctx, "v1", clientstate.KeyBookingDraft); err != nil {
		t.Fatalf("draft should still be alive: %v", err)
	}

	now = now.Add(time.Second)
	if _, err := s.Get(ctx, "v1", clientstate.KeyBookingDraft); !errors.Is(err, clientstate.ErrNotFound) {
		t.Fatalf("draft should have expired")
	}
	if v, _ := s.Get(ctx, "v1", clientstate.KeyLanguage); v != "gl" {
		t.Fatalf("language without ttl must survive, got %q", v)
	}
}

func TestClientState_Purge(t *testing.T) {
	s := NewClientState()
	now := time.Unix(0, 0)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Set(ctx, "a", "k", "1", time.Second)
	_ = s.Set(ctx, "b", "k", "2", time.Hour)
	now = now.Add(time.Minute)

	if n := s.Purge(); n != 1 {
		t.Fatalf("purged %d, want 1", n)
	}
}

func TestClientState_RejectsEmptyKeys(t *testing.T) {
	s := NewClientState()
	if err := s.Set(context.Background(), "", "k", "v", 0); !errors.Is(err, clientstate.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}
