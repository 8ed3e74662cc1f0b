package walkers

import "context"

// Source es el catálogo remoto (backend).
type Source interface {
	ListWalkers(ctx context.Context) ([]Walker, error)
	GetWalker(ctx context.Context, id string) (Walker, error)
}
