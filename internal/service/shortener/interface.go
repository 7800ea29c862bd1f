// Package shortener provides interfaces for types to be in compliance with.
package shortener

import (
	"context"

	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Encode(ctx context.Context, URL string, ownerID string) (sURL string, err error)
	Decode(ctx context.Context, sURL string) (URL string, err error)
	GetLink(ctx context.Context, sURL string, requesterID string) (link modellink.FullLink, err error)
	DecodeByOwner(ctx context.Context, ownerID string) (links []modellink.FullLink, err error)
	Update(ctx context.Context, sURL string, newURL string, requesterID string) error
	Delete(ctx context.Context, sURL string, requesterID string) error
}
