package dogs

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name         string   `json:"name"`
	Breed        string   `json:"breed,omitempty"`
	Size         Size     `json:"size"`
	Age          *int     `json:"age"`
	SpecialNeeds []string `json:"special_needs"`
}

// Normalize limpia y aplica defaults (tamaño Mediano, sin necesidades especiales).
func (in CreateInput) Normalize() (CreateInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	if in.Name == "" {
		return CreateInput{}, ErrInvalidInput
	}
	if strings.TrimSpace(string(in.Size)) == "" {
		in.Size = SizeMedium
	}
	if !in.Size.Valid() {
		return CreateInput{}, ErrInvalidInput
	}
	if in.Age != nil && *in.Age < 0 {
		return CreateInput{}, ErrInvalidInput
	}
	needs := make([]string, 0, len(in.SpecialNeeds))
	for _, n := range in.SpecialNeeds {
		if n = strings.TrimSpace(n); n != "" {
			needs = append(needs, n)
		}
	}
	in.SpecialNeeds = needs
	return in, nil
}

func (s *Service) Register(ctx context.Context, token string, in CreateInput) (Dog, error) {
	if strings.TrimSpace(token) == "" {
		return Dog{}, ErrUnauthorized
	}
	norm, err := in.Normalize()
	if err != nil {
		return Dog{}, err
	}
	return s.repo.CreateDog(ctx, token, norm)
}

func (s *Service) ListMine(ctx context.Context, token string) ([]Dog, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrUnauthorized
	}
	return s.repo.ListDogs(ctx, token)
}
