// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/avdeyev/av_go_tiny_link/internal/service/modellink"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/modelstorage"
)

// LinkSetter defines a set of methods for types implementing LinkSetter.
type LinkSetter interface {
	Dump(ctx context.Context, sURL string, URL string, ownerID string) error
}

// LinkGetter defines a set of methods for types implementing LinkGetter.
type LinkGetter interface {
	Retrieve(ctx context.Context, sURL string) (entry modelstorage.LinkMapEntry, err error)
}

// LinkGetterByOwner defines a set of methods for types implementing LinkGetterByOwner.
type LinkGetterByOwner interface {
	RetrieveByOwner(ctx context.Context, ownerID string) (links []modellink.FullLink, err error)
}

// LinkUpdater defines a set of methods for types implementing LinkUpdater.
type LinkUpdater interface {
	Update(ctx context.Context, sURL string, newURL string, requesterID string) error
}

// LinkDeleter defines a set of methods for types implementing LinkDeleter.
type LinkDeleter interface {
	Delete(ctx context.Context, sURL string, requesterID string) error
}

// LinkStorage defines a set of embedded interfaces for types implementing LinkStorage.
type LinkStorage interface {
	LinkSetter
	LinkGetter
	LinkGetterByOwner
	LinkUpdater
	LinkDeleter
}

// UserSetter defines a set of methods for types implementing UserSetter.
type UserSetter interface {
	AddUser(ctx context.Context, entry modelstorage.UserStorageEntry) error
}

// UserGetterByEmail defines a set of methods for types implementing UserGetterByEmail.
type UserGetterByEmail interface {
	RetrieveUserByEmail(ctx context.Context, email string) (entry modelstorage.UserStorageEntry, err error)
}

// UserGetterByID defines a set of methods for types implementing UserGetterByID.
type UserGetterByID interface {
	RetrieveUserByID(ctx context.Context, id string) (entry modelstorage.UserStorageEntry, err error)
}

// UserStorage defines a set of embedded interfaces for types implementing UserStorage.
type UserStorage interface {
	UserSetter
	UserGetterByEmail
	UserGetterByID
}

// Storage defines a set of embedded interfaces for types implementing both
// link and user storage.
type Storage interface {
	LinkStorage
	UserStorage
}
