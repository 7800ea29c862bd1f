// Package shortener provides functionality for creating and managing short
// codes for long URLs.
package shortener

import (
	"context"
	"errors"

	serviceErrors "github.com/avdeyev/av_go_tiny_link/internal/service/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/service/identifier"
	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
	"github.com/avdeyev/av_go_tiny_link/internal/service/shortener"
	"github.com/avdeyev/av_go_tiny_link/internal/storage"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
)

// MaxGenerateAttempts bounds the collision retry in Encode. With 62^6 possible
// codes, exhausting it indicates a defect, not a saturated code space.
const MaxGenerateAttempts = 16

// Check interface implementation explicitly
var (
	_ shortener.Processor = (*Shortener)(nil)
)

// Shortener struct defines data structure handling and provides support for adding new implementations.
type Shortener struct {
	generator   identifier.Generator
	linkStorage storage.LinkStorage
}

// InitShortener initializes a Shortener object and sets its attributes.
func InitShortener(g identifier.Generator, s storage.LinkStorage) (*Shortener, error) {
	if g == nil {
		return nil, &serviceErrors.ServiceFoundNilGenerator{Msg: "nil generator was passed to service initializer"}
	}
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Shortener{
		generator:   g,
		linkStorage: s,
	}, nil
}

// Encode generates a free sURL, stores URL with its owner under it, and
// returns sURL. Occupied codes are retried with fresh draws up to
// MaxGenerateAttempts. The URL is stored as given; only emptiness is rejected.
func (short *Shortener) Encode(ctx context.Context, URL string, ownerID string) (sURL string, err error) {
	if URL == "" {
		return "", &serviceErrors.ValidationError{Msg: "empty URL was passed to encoder"}
	}
	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		sURL, err = short.generator.Generate()
		if err != nil {
			return "", err
		}
		err = short.linkStorage.Dump(ctx, sURL, URL, ownerID)
		if err != nil {
			var alreadyExistsError *storageErrors.AlreadyExistsError
			if errors.As(err, &alreadyExistsError) {
				continue
			}
			return "", err
		}
		return sURL, nil
	}
	return "", &serviceErrors.CodeSpaceExhaustedError{Attempts: MaxGenerateAttempts}
}

// Decode retrieves and returns URL based on the given sURL as a key. It backs
// the public redirect and performs no ownership check.
func (short *Shortener) Decode(ctx context.Context, sURL string) (URL string, err error) {
	entry, err := short.linkStorage.Retrieve(ctx, sURL)
	if err != nil {
		return "", err
	}
	return entry.URL, nil
}

// GetLink retrieves one full link record for the management surface. An owned
// record is readable by its owner only.
func (short *Shortener) GetLink(ctx context.Context, sURL string, requesterID string) (link modellink.FullLink, err error) {
	entry, err := short.linkStorage.Retrieve(ctx, sURL)
	if err != nil {
		return modellink.FullLink{}, err
	}
	if entry.OwnerID != "" && entry.OwnerID != requesterID {
		return modellink.FullLink{}, &storageErrors.ForbiddenError{SURL: sURL, RequesterID: requesterID}
	}
	return modellink.FullLink{SURL: sURL, URL: entry.URL, OwnerID: entry.OwnerID}, nil
}

// DecodeByOwner retrieves and returns all links for a given owner ID.
func (short *Shortener) DecodeByOwner(ctx context.Context, ownerID string) (links []modellink.FullLink, err error) {
	links, err = short.linkStorage.RetrieveByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Update replaces the stored URL of sURL on behalf of requesterID.
func (short *Shortener) Update(ctx context.Context, sURL string, newURL string, requesterID string) error {
	if newURL == "" {
		return &serviceErrors.ValidationError{Msg: "empty URL was passed to updater"}
	}
	return short.linkStorage.Update(ctx, sURL, newURL, requesterID)
}

// Delete removes the link stored under sURL on behalf of requesterID.
func (short *Shortener) Delete(ctx context.Context, sURL string, requesterID string) error {
	return short.linkStorage.Delete(ctx, sURL, requesterID)
}
