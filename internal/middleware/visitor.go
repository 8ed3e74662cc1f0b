package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "paseos_visitor"
	visitorTTL    = 365 * 24 * time.Hour
	visitorIssuer = "paseos-lugo"
)

type ctxKey string

const visitorKey ctxKey = "visitor"

var ErrInvalidVisitor = errors.New("invalid visitor token")

// VisitorTokens firma y verifica la cookie que identifica al navegador.
// No autentica a nadie: solo separa el estado de cliente de cada visitante.
type VisitorTokens struct {
	secret []byte
	now    func() time.Time
}

func NewVisitorTokens(secret string) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), now: time.Now}
}

func (v *VisitorTokens) Issue(visitorID string) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		Issuer:    visitorIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(visitorTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *VisitorTokens) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(visitorIssuer),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidVisitor
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrInvalidVisitor
	}
	return claims.Subject, nil
}

// Visitor garantiza un id de visitante en cada request. Si la cookie falta o
// no valida, se emite una nueva.
func Visitor(tokens *VisitorTokens, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(VisitorCookie); err == nil {
				id, _ = tokens.Parse(strings.TrimSpace(c.Value))
			}
			if id == "" {
				id = uuid.NewString()
				raw, err := tokens.Issue(id)
				if err != nil {
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    raw,
					Path:     "/",
					MaxAge:   int(visitorTTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithVisitorID(r.Context(), id)))
		})
	}
}

func WithVisitorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorKey, id)
}

func VisitorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorKey).(string)
	return id, ok && id != ""
}
