// Package auth provides the authorization facade composing the user directory
// and the shortener behind principal checks.
package auth

import (
	"context"

	"github.com/avdeyev/av_go_tiny_link/internal/service/auth"
	serviceErrors "github.com/avdeyev/av_go_tiny_link/internal/service/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
	"github.com/avdeyev/av_go_tiny_link/internal/service/shortener"
	"github.com/avdeyev/av_go_tiny_link/internal/service/userdir"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ auth.Authorizer = (*Service)(nil)
)

// Service struct defines data structure handling and provides support for adding new implementations.
type Service struct {
	directory userdir.Directory
	processor shortener.Processor
}

// InitService initializes a Service object and sets its attributes.
func InitService(d userdir.Directory, p shortener.Processor) (*Service, error) {
	if d == nil {
		return nil, &serviceErrors.ServiceFoundNilDirectory{Msg: "nil directory was passed to service initializer"}
	}
	if p == nil {
		return nil, &serviceErrors.ServiceFoundNilProcessor{Msg: "nil processor was passed to service initializer"}
	}
	return &Service{
		directory: d,
		processor: p,
	}, nil
}

// Register creates an account and yields an authenticated principal. On
// failure the caller's principal stays anonymous and the directory error is
// surfaced as is.
func (s *Service) Register(ctx context.Context, email string, password string) (auth.Principal, error) {
	user, err := s.directory.Register(ctx, email, password)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Authenticated(user.ID), nil
}

// Login verifies credentials and yields an authenticated principal.
func (s *Service) Login(ctx context.Context, email string, password string) (auth.Principal, error) {
	user, err := s.directory.VerifyCredentials(ctx, email, password)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Authenticated(user.ID), nil
}

// Logout unconditionally clears the principal.
func (s *Service) Logout(_ auth.Principal) auth.Principal {
	return auth.Principal{}
}

// Shorten stores URL for any principal; authenticated principals become the
// owner of the created link, anonymous ones produce an ownerless link.
func (s *Service) Shorten(ctx context.Context, p auth.Principal, URL string) (sURL string, err error) {
	return s.processor.Encode(ctx, URL, p.UserID())
}

// Resolve returns the target URL of sURL. Redirects are public, so no
// principal is involved.
func (s *Service) Resolve(ctx context.Context, sURL string) (URL string, err error) {
	return s.processor.Decode(ctx, sURL)
}

// ListMine returns all links owned by the principal.
func (s *Service) ListMine(ctx context.Context, p auth.Principal) (links []modellink.FullLink, err error) {
	if p.IsAnonymous() {
		return nil, &storageErrors.ForbiddenError{RequesterID: ""}
	}
	return s.processor.DecodeByOwner(ctx, p.UserID())
}

// ViewOne returns a single owned link record. Anonymous principals fail fast
// before the store is consulted.
func (s *Service) ViewOne(ctx context.Context, p auth.Principal, sURL string) (link modellink.FullLink, err error) {
	if p.IsAnonymous() {
		return modellink.FullLink{}, &storageErrors.ForbiddenError{SURL: sURL, RequesterID: ""}
	}
	return s.processor.GetLink(ctx, sURL, p.UserID())
}

// EditLongURL replaces the target of an owned link. Anonymous principals fail
// fast before the store is consulted.
func (s *Service) EditLongURL(ctx context.Context, p auth.Principal, sURL string, newURL string) error {
	if p.IsAnonymous() {
		return &storageErrors.ForbiddenError{SURL: sURL, RequesterID: ""}
	}
	return s.processor.Update(ctx, sURL, newURL, p.UserID())
}

// Remove deletes an owned link. Anonymous principals fail fast before the
// store is consulted.
func (s *Service) Remove(ctx context.Context, p auth.Principal, sURL string) error {
	if p.IsAnonymous() {
		return &storageErrors.ForbiddenError{SURL: sURL, RequesterID: ""}
	}
	return s.processor.Delete(ctx, sURL, p.UserID())
}
