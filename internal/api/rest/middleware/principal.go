// Package middleware provides various middleware functionality.
package middleware

import (
	"context"
	"net/http"

	"github.com/avdeyev/av_go_tiny_link/internal/config"
	"github.com/avdeyev/av_go_tiny_link/internal/service/auth"
	"github.com/avdeyev/av_go_tiny_link/internal/service/session"
)

type ctxKey int

const principalKey ctxKey = 0

// PrincipalHandler sets object structure.
type PrincipalHandler struct {
	sessions session.Manager
	cfg      *config.SecretConfig
}

// NewPrincipalHandler initializes a new principal-resolving handler.
func NewPrincipalHandler(sessions session.Manager, cfg *config.SecretConfig) (*PrincipalHandler, error) {
	return &PrincipalHandler{
		sessions: sessions,
		cfg:      cfg,
	}, nil
}

// PrincipalHandle resolves the session cookie into a principal stored in the
// request context. An absent or invalid cookie yields an anonymous principal;
// identity is only ever issued by the register and login endpoints.
func (p *PrincipalHandler) PrincipalHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := auth.Principal{}
		cookie, err := r.Cookie(p.cfg.AuthKey)
		if err == nil {
			userID, parseErr := p.sessions.Parse(cookie.Value)
			if parseErr == nil {
				principal = auth.Authenticated(userID)
			}
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the principal resolved by PrincipalHandle.
// Contexts without one yield an anonymous principal.
func PrincipalFromContext(ctx context.Context) auth.Principal {
	if p, ok := ctx.Value(principalKey).(auth.Principal); ok {
		return p
	}
	return auth.Principal{}
}
