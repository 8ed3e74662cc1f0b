package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paseos-lugo/internal/adapters/storage/memory"
	"paseos-lugo/internal/domain/i18n"
	"paseos-lugo/internal/domain/session"
	"paseos-lugo/internal/ports/clientstate"
)

type fakeAuth struct{}

func (fakeAuth) Login(context.Context, session.Credentials) (session.AuthResponse, error) {
	return session.AuthResponse{}, session.ErrUnauthorized
}
func (fakeAuth) Register(context.Context, session.Registration) (session.AuthResponse, error) {
	return session.AuthResponse{}, session.ErrUnauthorized
}
func (fakeAuth) ExchangeSession(_ context.Context, id string) (session.AuthResponse, error) {
	if id != "good" {
		return session.AuthResponse{}, session.ErrUnauthorized
	}
	return session.AuthResponse{Token: "tok", User: session.User{ID: "u1", Name: "Ana", Role: session.RoleOwner}}, nil
}
func (fakeAuth) Me(context.Context, string) (session.User, error) {
	return session.User{}, errors.New("unused")
}
func (fakeAuth) UpdateMe(context.Context, string, session.ProfileInput) error { return nil }
func (fakeAuth) Logout(context.Context, string) error                         { return nil }

func newManager(state clientstate.Store) *session.Manager {
	return session.NewManager(func(visitorID string) *session.Store {
		tokens := session.ScopeTokens{State: clientstate.Scope{Store: state, VisitorID: visitorID}}
		return session.NewStore(fakeAuth{}, tokens, nil, nil)
	})
}

func TestSession_ExchangesFragmentAndCleansLocation(t *testing.T) {
	mgr := newManager(memory.NewClientState())
	var token string
	h := Session(mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = Token(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithVisitorID(req.Context(), "v1"))
	req.Header.Set(LocationHeader, "https://paseos.example/perfil#session_id=good")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "tok", token)
	assert.Equal(t, "https://paseos.example/perfil", rec.Header().Get(LocationHeader))
}

func TestSession_WithoutVisitorIsAnonymous(t *testing.T) {
	mgr := newManager(memory.NewClientState())
	called := false
	h := Session(mgr, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Empty(t, Token(r))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	require.True(t, called)
	assert.Equal(t, 0, mgr.Len())
}

func TestLanguage_UsesStoredPreference(t *testing.T) {
	state := memory.NewClientState()
	catalog := i18n.Default()
	require.NoError(t, state.Set(context.Background(), "v1", clientstate.KeyLanguage, "gl", 0))

	var lang string
	h := Language(catalog, state, "es")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang = i18n.Language(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(WithVisitorID(req.Context(), "v1")))
	assert.Equal(t, "gl", lang)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "es", lang)
}
