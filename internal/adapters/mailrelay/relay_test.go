package mailrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paseos-lugo/internal/domain/contact"
)

func TestHTTPRelay_Send(t *testing.T) {
	var got contact.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/contact" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	relay, err := New(srv.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("new relay: %v", err)
	}
	if err := relay.Send(context.Background(), contact.Message{Email: "a@example.com", Message: "hola"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got.Email != "a@example.com" || got.Message != "hola" {
		t.Fatalf("unexpected payload %+v", got)
	}
}

func TestHTTPRelay_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	relay, _ := NewHTTPRelay(srv.URL, time.Second)
	if err := relay.Send(context.Background(), contact.Message{Email: "a@example.com", Message: "x"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_WithoutURLLogs(t *testing.T) {
	relay, err := New("", time.Second, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := relay.(LogRelay); !ok {
		t.Fatalf("expected LogRelay, got %T", relay)
	}
	if err := relay.Send(context.Background(), contact.Message{Email: "a@example.com", Message: "x"}); err != nil {
		t.Fatalf("log relay must not fail: %v", err)
	}
}
