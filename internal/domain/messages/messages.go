package messages

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrUnauthorized = errors.New("unauthorized")

type Message struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	RecipientID   string    `json:"recipient_id"`
	Message       string    `json:"message"`
	BookingID     string    `json:"booking_id,omitempty"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
	SenderName    string    `json:"sender_name,omitempty"`
	RecipientName string    `json:"recipient_name,omitempty"`
	SenderPicture string    `json:"sender_picture,omitempty"`
}

type Source interface {
	ListMessages(ctx context.Context, token string) ([]Message, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkRead(ctx context.Context, token, id string) error
}

type Inbox struct {
	Messages []Message `json:"messages"`
	Unread   int       `json:"unread"`
}

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Inbox pide lista y contador a la vez.
func (s *Service) Inbox(ctx context.Context, token string) (Inbox, error) {
	if strings.TrimSpace(token) == "" {
		return Inbox{}, ErrUnauthorized
	}
	var in Inbox
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		msgs, err := s.src.ListMessages(gctx, token)
		in.Messages = msgs
		return err
	})
	g.Go(func() error {
		n, err := s.src.UnreadCount(gctx, token)
		in.Unread = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Inbox{}, err
	}
	if in.Messages == nil {
		in.Messages = []Message{}
	}
	return in, nil
}

func (s *Service) MarkRead(ctx context.Context, token, id string) error {
	if strings.TrimSpace(token) == "" {
		return ErrUnauthorized
	}
	return s.src.MarkRead(ctx, token, id)
}
