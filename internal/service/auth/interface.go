// Package auth provides the principal model and interfaces for types to be in
// compliance with.
package auth

import (
	"context"

	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
)

// Principal is the caller's authentication state. The zero value is anonymous;
// principals are passed explicitly into every call rather than read from an
// ambient session.
type Principal struct {
	userID string
}

// Authenticated constructs a principal bound to userID.
func Authenticated(userID string) Principal {
	return Principal{userID: userID}
}

// IsAnonymous reports whether the principal carries no user identity.
func (p Principal) IsAnonymous() bool {
	return p.userID == ""
}

// UserID returns the bound user ID, empty for anonymous principals.
func (p Principal) UserID() string {
	return p.userID
}

// Authorizer defines a set of methods for types implementing Authorizer.
type Authorizer interface {
	Register(ctx context.Context, email string, password string) (Principal, error)
	Login(ctx context.Context, email string, password string) (Principal, error)
	Logout(p Principal) Principal
	Shorten(ctx context.Context, p Principal, URL string) (sURL string, err error)
	Resolve(ctx context.Context, sURL string) (URL string, err error)
	ListMine(ctx context.Context, p Principal) (links []modellink.FullLink, err error)
	ViewOne(ctx context.Context, p Principal, sURL string) (link modellink.FullLink, err error)
	EditLongURL(ctx context.Context, p Principal, sURL string, newURL string) error
	Remove(ctx context.Context, p Principal, sURL string) error
}
