// Package session provides JWT-backed session token handling.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/avdeyev/av_go_tiny_link/internal/config"
	"github.com/avdeyev/av_go_tiny_link/internal/service/session"
)

// Check interface implementation explicitly
var (
	_ session.Manager = (*Manager)(nil)
)

// Claims carries the user ID inside the registered JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Manager issues and parses HS256-signed session tokens.
type Manager struct {
	key []byte
	ttl time.Duration
}

// NewManager initializes a Manager object from the secret configuration.
func NewManager(cfg *config.SecretConfig) *Manager {
	return &Manager{
		key: []byte(cfg.UserKey),
		ttl: cfg.TokenTTL,
	}
}

// Issue signs a fresh token holding userID.
func (m *Manager) Issue(userID string) (token string, err error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// Parse validates a token and extracts the user ID it carries.
func (m *Manager) Parse(token string) (userID string, err error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}
