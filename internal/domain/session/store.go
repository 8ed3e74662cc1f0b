package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"paseos-lugo/internal/platform/logger"
	"paseos-lugo/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// FragmentParam es el parámetro que el proveedor OAuth deja en el fragmento.
const FragmentParam = "session_id"

// Store es la sesión de un visitante: token + usuario actual.
//
// loaded indica que el token persistido ya se validó contra /auth/me.
// fresh se activa tras login/registro/canje para saltarse esa validación
// una vez, porque la respuesta ya trajo el usuario.
type Store struct {
	api    AuthAPI
	tokens TokenPersister
	oauth  auth.LoginProvider
	log    logger.Logger

	mu     sync.Mutex
	token  string
	user   *User
	loaded bool
	fresh  bool
}

func NewStore(api AuthAPI, tokens TokenPersister, oauth auth.LoginProvider, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{api: api, tokens: tokens, oauth: oauth, log: log}
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User devuelve una copia del usuario actual, o nil.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// Bootstrap resuelve la sesión al cargar una página y devuelve location sin
// fragmento cuando traía session_id.
//
//  1. fragmento con session_id: se canjea por token (falle o no, se limpia la URL)
//  2. sesión recién abierta: no se revalida
//  3. token persistido sin validar: GET /auth/me; un 401 lo borra
//  4. sin token: visitante anónimo
func (s *Store) Bootstrap(ctx context.Context, location string) (string, error) {
	if sessionID, cleaned, ok := splitFragment(location); ok {
		if err := s.exchange(ctx, sessionID); err != nil {
			s.log.Warn("oauth session exchange failed", map[string]any{"err": err})
		}
		return cleaned, nil
	}

	s.mu.Lock()
	if s.fresh {
		s.fresh = false
		s.loaded = true
		s.mu.Unlock()
		return location, nil
	}
	if s.loaded {
		s.mu.Unlock()
		return location, nil
	}
	s.mu.Unlock()

	token, err := s.tokens.LoadToken(ctx)
	if err != nil {
		return location, fmt.Errorf("load token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		s.mu.Lock()
		s.token, s.user, s.loaded = "", nil, true
		s.mu.Unlock()
		return location, nil
	}

	u, err := s.api.Me(ctx, token)
	switch {
	case errors.Is(err, ErrUnauthorized):
		s.log.Info("stored token rejected", nil)
		_ = s.tokens.ClearToken(ctx)
		s.mu.Lock()
		s.token, s.user, s.loaded = "", nil, true
		s.mu.Unlock()
		return location, nil
	case err != nil:
		// Error transitorio: se conserva el token y se reintenta en la próxima carga.
		s.mu.Lock()
		s.token, s.user = token, nil
		s.mu.Unlock()
		return location, fmt.Errorf("validate token: %w", err)
	}

	s.mu.Lock()
	s.token, s.user, s.loaded = token, &u, true
	s.mu.Unlock()
	return location, nil
}

func (s *Store) exchange(ctx context.Context, sessionID string) error {
	res, err := s.api.ExchangeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.adopt(ctx, res)
}

func (s *Store) Login(ctx context.Context, email, password string) (User, error) {
	in := Credentials{Email: strings.TrimSpace(email), Password: password}
	if in.Email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}
	res, err := s.api.Login(ctx, in)
	if err != nil {
		return User{}, err
	}
	if err := s.adopt(ctx, res); err != nil {
		return User{}, err
	}
	return res.User, nil
}

// Register crea la cuenta; sin rol explícito se registra como dueño.
func (s *Store) Register(ctx context.Context, in Registration) (User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if in.Role == "" {
		in.Role = RoleOwner
	}
	if in.Email == "" || in.Password == "" || in.Name == "" || !in.Role.Valid() {
		return User{}, ErrInvalidInput
	}
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return User{}, err
	}
	if err := s.adopt(ctx, res); err != nil {
		return User{}, err
	}
	return res.User, nil
}

func (s *Store) adopt(ctx context.Context, res AuthResponse) error {
	if strings.TrimSpace(res.Token) == "" {
		return fmt.Errorf("%w: empty token", ErrUnauthorized)
	}
	if err := s.tokens.SaveToken(ctx, res.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	u := res.User
	s.mu.Lock()
	s.token, s.user, s.fresh, s.loaded = res.Token, &u, true, true
	s.mu.Unlock()
	return nil
}

// Logout limpia primero el estado local; el aviso al backend es best-effort.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.token, s.user, s.fresh, s.loaded = "", nil, false, true
	s.mu.Unlock()

	if err := s.tokens.ClearToken(ctx); err != nil {
		s.log.Warn("clear token failed", map[string]any{"err": err})
	}
	if token == "" {
		return
	}
	if err := s.api.Logout(ctx, token); err != nil {
		s.log.Debug("backend logout failed", map[string]any{"err": err})
	}
}

// GoogleLoginURL no toca el estado: solo arma la salida al proveedor.
func (s *Store) GoogleLoginURL(origin string) string {
	return s.oauth.LoginURL(strings.TrimRight(origin, "/") + "/")
}

func (s *Store) UpdateProfile(ctx context.Context, in ProfileInput) (User, error) {
	token := s.Token()
	if token == "" {
		return User{}, ErrUnauthorized
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" {
		return User{}, ErrInvalidInput
	}
	if err := s.api.UpdateMe(ctx, token, in); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		s.user = &User{}
	}
	s.user.Name, s.user.Phone, s.user.Address = in.Name, in.Phone, in.Address
	return *s.user, nil
}

// splitFragment extrae session_id del fragmento y devuelve location sin él.
func splitFragment(location string) (sessionID, cleaned string, ok bool) {
	i := strings.IndexByte(location, '#')
	if i < 0 {
		return "", location, false
	}
	q, err := url.ParseQuery(location[i+1:])
	if err != nil {
		return "", location, false
	}
	sessionID = strings.TrimSpace(q.Get(FragmentParam))
	if sessionID == "" {
		return "", location, false
	}
	return sessionID, location[:i], true
}
