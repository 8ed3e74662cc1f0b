package dogs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newDogsRouter(repo *fakeRepo, token string) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo), func(*http.Request) string { return token })
	return r
}

func TestCreateDogHandler_UsesInjectedToken(t *testing.T) {
	repo := &fakeRepo{}
	h := newDogsRouter(repo, "tok-ana")

	req := httptest.NewRequest(http.MethodPost, "/mis-reservas/perros", strings.NewReader(`{"name":"Rex","size":"Grande"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var out createDogResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Dog.Name != "Rex" || out.Toast != "profile.petAdded" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(repo.created))
	}
}

func TestCreateDogHandler_Errors(t *testing.T) {
	cases := []struct {
		name  string
		token string
		body  string
		want  int
	}{
		{"sin sesión", "", `{"name":"Rex"}`, http.StatusUnauthorized},
		{"nombre vacío", "tok-ana", `{"name":" "}`, http.StatusUnprocessableEntity},
		{"json roto", "tok-ana", `{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			req := httptest.NewRequest(http.MethodPost, "/mis-reservas/perros", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			newDogsRouter(repo, tc.token).ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			if len(repo.created) != 0 {
				t.Fatalf("backend must not be called, got %d calls", len(repo.created))
			}
		})
	}
}
