// Package userdir provides functionality for registering accounts and
// verifying credentials.
package userdir

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	serviceErrors "github.com/avdeyev/av_go_tiny_link/internal/service/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/service/modeluser"
	"github.com/avdeyev/av_go_tiny_link/internal/service/userdir"
	"github.com/avdeyev/av_go_tiny_link/internal/storage"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ userdir.Directory = (*UserDirectory)(nil)
)

// credentials is the validation target for registration and login input.
type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// UserDirectory struct defines data structure handling and provides support for adding new implementations.
type UserDirectory struct {
	userStorage storage.UserStorage
	validate    *validator.Validate
}

// InitUserDirectory initializes a UserDirectory object and sets its attributes.
func InitUserDirectory(s storage.UserStorage) (*UserDirectory, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &UserDirectory{
		userStorage: s,
		validate:    validator.New(),
	}, nil
}

// Register validates input, derives a salted one-way hash of password,
// assigns a fresh user ID and stores the account. Email uniqueness is enforced
// atomically by the storage layer. Emails compare byte-exact, no case folding.
func (d *UserDirectory) Register(ctx context.Context, email string, password string) (user modeluser.User, err error) {
	if err := d.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return modeluser.User{}, &serviceErrors.ValidationError{Msg: "email and password are required"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return modeluser.User{}, err
	}
	entry := modelstorage.UserStorageEntry{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	err = d.userStorage.AddUser(ctx, entry)
	if err != nil {
		return modeluser.User{}, err
	}
	return modeluser.User{ID: entry.ID, Email: entry.Email}, nil
}

// FindByEmail resolves a user by its email.
func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (user modeluser.User, err error) {
	entry, err := d.userStorage.RetrieveUserByEmail(ctx, email)
	if err != nil {
		return modeluser.User{}, err
	}
	return modeluser.User{ID: entry.ID, Email: entry.Email}, nil
}

// FindByID resolves a user by its ID.
func (d *UserDirectory) FindByID(ctx context.Context, id string) (user modeluser.User, err error) {
	entry, err := d.userStorage.RetrieveUserByID(ctx, id)
	if err != nil {
		return modeluser.User{}, err
	}
	return modeluser.User{ID: entry.ID, Email: entry.Email}, nil
}

// VerifyCredentials checks email and password against the stored hash. Both an
// unknown email and a failed comparison yield UnauthorizedError so callers
// cannot distinguish the two.
func (d *UserDirectory) VerifyCredentials(ctx context.Context, email string, password string) (user modeluser.User, err error) {
	if err := d.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return modeluser.User{}, &serviceErrors.ValidationError{Msg: "email and password are required"}
	}
	entry, err := d.userStorage.RetrieveUserByEmail(ctx, email)
	if err != nil {
		var userNotFoundError *storageErrors.UserNotFoundError
		if errors.As(err, &userNotFoundError) {
			return modeluser.User{}, &serviceErrors.UnauthorizedError{Msg: "invalid email or password"}
		}
		return modeluser.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(password)); err != nil {
		return modeluser.User{}, &serviceErrors.UnauthorizedError{Msg: "invalid email or password"}
	}
	return modeluser.User{ID: entry.ID, Email: entry.Email}, nil
}
