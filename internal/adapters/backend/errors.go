package backend

import (
	"errors"
	"fmt"
	"net/http"

	"paseos-lugo/internal/platform/httpclient"
)

// ErrUpstream cubre cualquier fallo no clasificado: transporte o status no-2xx.
var ErrUpstream = errors.New("backend upstream error")

// mapErr traduce el status HTTP al sentinel del dominio que llama.
// nil en unauthorized/notFound significa que ese caso cae en ErrUpstream.
func mapErr(err, unauthorized, notFound error) error {
	if err == nil {
		return nil
	}
	switch httpclient.StatusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		if unauthorized != nil {
			return fmt.Errorf("%w: %w", unauthorized, err)
		}
	case http.StatusNotFound:
		if notFound != nil {
			return fmt.Errorf("%w: %w", notFound, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
