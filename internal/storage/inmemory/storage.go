// Package inmemory provides data types and methods for process-local storage
// of link and user records implemented as maps.
package inmemory

import (
	"context"
	"sync"

	"github.com/avdeyev/av_go_tiny_link/internal/logger"
	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
	"github.com/avdeyev/av_go_tiny_link/internal/storage"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
// All check-then-act sequences run under mu as one critical section.
type Storage struct {
	mu    sync.Mutex
	links map[string]modelstorage.LinkMapEntry
	users map[string]modelstorage.UserStorageEntry
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	return &Storage{
		links: make(map[string]modelstorage.LinkMapEntry),
		users: make(map[string]modelstorage.UserStorageEntry),
	}
}

// Dump stores a pair of sURL and URL with its owner as a key-value pair.
func (s *Storage) Dump(ctx context.Context, sURL string, URL string, ownerID string) error {
	// an already expired context must not reach the critical section
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	dumpDone := make(chan bool, 1)
	dumpError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, ok := s.links[sURL]
		if ok {
			dumpError <- &storageErrors.AlreadyExistsError{SURL: sURL}
			return
		}
		s.links[sURL] = modelstorage.LinkMapEntry{URL: URL, OwnerID: ownerID}
		dumpDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Dumping link:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dmpError := <-dumpError:
		logger.Log.Debugln("Dumping link:", dmpError.Error())
		return dmpError
	case <-dumpDone:
		logger.Log.Debugln("Dumping link:", sURL, "as", URL)
		return nil
	}
}

// Retrieve returns a link entry corresponding to sURL.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (entry modelstorage.LinkMapEntry, err error) {
	if ctx.Err() != nil {
		return modelstorage.LinkMapEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.LinkMapEntry, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		linkEntry, ok := s.links[sURL]
		if !ok {
			retrieveError <- &storageErrors.NotFoundError{SURL: sURL}
			return
		}
		retrieveDone <- linkEntry
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Retrieving link:", ctx.Err())
		return modelstorage.LinkMapEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		logger.Log.Debugln("Retrieving link:", rtrvError.Error())
		return modelstorage.LinkMapEntry{}, rtrvError
	case linkEntry := <-retrieveDone:
		logger.Log.Debugln("Retrieving link:", sURL, "as", linkEntry.URL)
		return linkEntry, nil
	}
}

// RetrieveByOwner returns a slice of links defined as modellink.FullLink for one particular owner ID.
func (s *Storage) RetrieveByOwner(ctx context.Context, ownerID string) (links []modellink.FullLink, err error) {
	if ctx.Err() != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	retrieveDone := make(chan []modellink.FullLink, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var links []modellink.FullLink
		for sURL, entry := range s.links {
			if entry.OwnerID == ownerID {
				links = append(links, modellink.FullLink{
					SURL:    sURL,
					URL:     entry.URL,
					OwnerID: entry.OwnerID,
				})
			}
		}
		retrieveDone <- links
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Retrieving links by owner:", ctx.Err())
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case links := <-retrieveDone:
		logger.Log.Debugln("Retrieving links by owner: found", len(links))
		return links, nil
	}
}

// Update replaces the target URL of an existing link. A link with an owner may
// be modified by that owner only; an ownerless link may be modified by anyone.
func (s *Storage) Update(ctx context.Context, sURL string, newURL string, requesterID string) error {
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	updateDone := make(chan bool, 1)
	updateError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.links[sURL]
		if !ok {
			updateError <- &storageErrors.NotFoundError{SURL: sURL}
			return
		}
		if entry.OwnerID != "" && entry.OwnerID != requesterID {
			updateError <- &storageErrors.ForbiddenError{SURL: sURL, RequesterID: requesterID}
			return
		}
		entry.URL = newURL
		s.links[sURL] = entry
		updateDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Updating link:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case updError := <-updateError:
		logger.Log.Debugln("Updating link:", updError.Error())
		return updError
	case <-updateDone:
		logger.Log.Debugln("Updating link:", sURL, "to", newURL)
		return nil
	}
}

// Delete removes an existing link observing the same ownership rule as Update.
func (s *Storage) Delete(ctx context.Context, sURL string, requesterID string) error {
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	deleteDone := make(chan bool, 1)
	deleteError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.links[sURL]
		if !ok {
			deleteError <- &storageErrors.NotFoundError{SURL: sURL}
			return
		}
		if entry.OwnerID != "" && entry.OwnerID != requesterID {
			deleteError <- &storageErrors.ForbiddenError{SURL: sURL, RequesterID: requesterID}
			return
		}
		delete(s.links, sURL)
		deleteDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Deleting link:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case delError := <-deleteError:
		logger.Log.Debugln("Deleting link:", delError.Error())
		return delError
	case <-deleteDone:
		logger.Log.Debugln("Deleting link:", sURL)
		return nil
	}
}

// AddUser stores a user entry enforcing email uniqueness within the same
// critical section as the insert.
func (s *Storage) AddUser(ctx context.Context, entry modelstorage.UserStorageEntry) error {
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	addDone := make(chan bool, 1)
	addError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, existing := range s.users {
			if existing.Email == entry.Email {
				addError <- &storageErrors.EmailConflictError{Email: entry.Email}
				return
			}
		}
		s.users[entry.ID] = entry
		addDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Adding user:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case usrError := <-addError:
		logger.Log.Debugln("Adding user:", usrError.Error())
		return usrError
	case <-addDone:
		logger.Log.Debugln("Adding user:", entry.ID)
		return nil
	}
}

// RetrieveUserByEmail returns a user entry matching email with a linear scan.
// Emails compare byte-exact, no case folding.
func (s *Storage) RetrieveUserByEmail(ctx context.Context, email string) (entry modelstorage.UserStorageEntry, err error) {
	if ctx.Err() != nil {
		return modelstorage.UserStorageEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.UserStorageEntry, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, existing := range s.users {
			if existing.Email == email {
				retrieveDone <- existing
				return
			}
		}
		retrieveError <- &storageErrors.UserNotFoundError{Key: email}
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Retrieving user by email:", ctx.Err())
		return modelstorage.UserStorageEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		logger.Log.Debugln("Retrieving user by email:", rtrvError.Error())
		return modelstorage.UserStorageEntry{}, rtrvError
	case userEntry := <-retrieveDone:
		logger.Log.Debugln("Retrieving user by email: found", userEntry.ID)
		return userEntry, nil
	}
}

// RetrieveUserByID returns a user entry by its ID.
func (s *Storage) RetrieveUserByID(ctx context.Context, id string) (entry modelstorage.UserStorageEntry, err error) {
	if ctx.Err() != nil {
		return modelstorage.UserStorageEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.UserStorageEntry, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		userEntry, ok := s.users[id]
		if !ok {
			retrieveError <- &storageErrors.UserNotFoundError{Key: id}
			return
		}
		retrieveDone <- userEntry
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		logger.Log.Debugln("Retrieving user by ID:", ctx.Err())
		return modelstorage.UserStorageEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		logger.Log.Debugln("Retrieving user by ID:", rtrvError.Error())
		return modelstorage.UserStorageEntry{}, rtrvError
	case userEntry := <-retrieveDone:
		logger.Log.Debugln("Retrieving user by ID: found", userEntry.ID)
		return userEntry, nil
	}
}
