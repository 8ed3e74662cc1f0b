package walkers

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("walker not found")
)

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Catalog es lo que pinta /paseadores.
type Catalog struct {
	Walkers   []Walker `json:"walkers"`
	Total     int      `json:"total"`
	Locations []string `json:"locations"`
	Criteria  Criteria `json:"criteria"`
}

func (s *Service) Browse(ctx context.Context, c Criteria) (Catalog, error) {
	all, err := s.src.ListWalkers(ctx)
	if err != nil {
		return Catalog{}, err
	}
	if c.Location == "" {
		c.Location = AllLocations
	}
	filtered := Filter(all, c)
	return Catalog{
		Walkers:   filtered,
		Total:     len(all),
		Locations: Locations(all),
		Criteria:  c,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (Walker, error) {
	if strings.TrimSpace(id) == "" {
		return Walker{}, ErrNotFound
	}
	return s.src.GetWalker(ctx, id)
}
