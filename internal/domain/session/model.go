package session

import "context"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
)

func (r Role) Valid() bool { return r == RoleOwner || r == RoleWalker }

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// AuthResponse es la respuesta de login, registro y canje de sesión OAuth.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

type ProfileInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AuthAPI son los endpoints /api/auth/* del backend.
type AuthAPI interface {
	Login(ctx context.Context, in Credentials) (AuthResponse, error)
	Register(ctx context.Context, in Registration) (AuthResponse, error)
	// ExchangeSession canjea el session_id del fragmento OAuth (header X-Session-ID).
	ExchangeSession(ctx context.Context, sessionID string) (AuthResponse, error)
	Me(ctx context.Context, token string) (User, error)
	UpdateMe(ctx context.Context, token string, in ProfileInput) error
	Logout(ctx context.Context, token string) error
}

// TokenPersister guarda el token entre visitas.
type TokenPersister interface {
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
