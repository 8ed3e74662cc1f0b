package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"paseos-lugo/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrRelay        = errors.New("mail relay failed")
)

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize exige email válido y mensaje; nombre y asunto son opcionales.
func (m Message) Normalize() (Message, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
	if m.Email == "" || m.Message == "" {
		return Message{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return Message{}, ErrInvalidInput
	}
	return m, nil
}

// Relay entrega el mensaje al colaborador de correo.
type Relay interface {
	Send(ctx context.Context, m Message) error
}

type Service struct {
	relay Relay
	log   logger.Logger
}

func NewService(relay Relay, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{relay: relay, log: log}
}

// Send solo distingue éxito o fallo; el detalle queda en el log.
func (s *Service) Send(ctx context.Context, m Message) error {
	m, err := m.Normalize()
	if err != nil {
		return err
	}
	if err := s.relay.Send(ctx, m); err != nil {
		s.log.Warn("contact relay failed", map[string]any{"err": err})
		return ErrRelay
	}
	return nil
}
