// Package userdir provides interfaces for types to be in compliance with.
package userdir

import (
	"context"

	"github.com/avdeyev/av_go_tiny_link/internal/service/modeluser"
)

// Directory defines a set of methods for types implementing Directory.
// Implementations never expose stored credential material.
type Directory interface {
	Register(ctx context.Context, email string, password string) (user modeluser.User, err error)
	FindByEmail(ctx context.Context, email string) (user modeluser.User, err error)
	FindByID(ctx context.Context, id string) (user modeluser.User, err error)
	VerifyCredentials(ctx context.Context, email string, password string) (user modeluser.User, err error)
}
