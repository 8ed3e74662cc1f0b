package contact

import (
	"context"
	"errors"
	"testing"
)

type recordingRelay struct {
	sent []Message
	err  error
}

func (r *recordingRelay) Send(_ context.Context, m Message) error {
	r.sent = append(r.sent, m)
	return r.err
}

func TestSend_Validates(t *testing.T) {
	relay := &recordingRelay{}
	svc := NewService(relay, nil)

	cases := []Message{
		{Email: "", Message: "hola"},
		{Email: "ana@example.com", Message: "   "},
		{Email: "no-es-un-email", Message: "hola"},
	}
	for _, m := range cases {
		if err := svc.Send(context.Background(), m); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", m, err)
		}
	}
	if len(relay.sent) != 0 {
		t.Fatalf("relay must not be called on invalid input")
	}
}

func TestSend_Trims(t *testing.T) {
	relay := &recordingRelay{}
	svc := NewService(relay, nil)

	err := svc.Send(context.Background(), Message{Name: " Ana ", Email: " ana@example.com ", Message: " ¿Paseáis en Sarria? "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(relay.sent) != 1 || relay.sent[0].Email != "ana@example.com" || relay.sent[0].Name != "Ana" {
		t.Fatalf("unexpected relay payload: %+v", relay.sent)
	}
}

func TestSend_RelayFailure(t *testing.T) {
	svc := NewService(&recordingRelay{err: errors.New("smtp down")}, nil)
	err := svc.Send(context.Background(), Message{Email: "ana@example.com", Message: "hola"})
	if !errors.Is(err, ErrRelay) {
		t.Fatalf("expected ErrRelay, got %v", err)
	}
}
