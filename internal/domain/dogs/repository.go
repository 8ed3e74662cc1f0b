package dogs

import "context"

// Repository vive en el backend; todas las operaciones van con el bearer del dueño.
type Repository interface {
	ListDogs(ctx context.Context, token string) ([]Dog, error)
	CreateDog(ctx context.Context, token string, in CreateInput) (Dog, error)
}
