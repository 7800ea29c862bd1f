package userdir

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/avdeyev/av_go_tiny_link/internal/mocks"
	serviceErrors "github.com/avdeyev/av_go_tiny_link/internal/service/errors"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/modelstorage"
)

// Tests

func TestInitUserDirectory(t *testing.T) {
	_, err := InitUserDirectory(nil)
	assert.Equal(t, "nil storage was passed to service initializer", err.Error())
}

func TestRegisterHashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	var stored modelstorage.UserStorageEntry
	s.EXPECT().AddUser(context.Background(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry modelstorage.UserStorageEntry) error {
			stored = entry
			return nil
		},
	)
	directory, _ := InitUserDirectory(s)
	user, err := directory.Register(context.Background(), "a@x.com", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, user.ID, stored.ID)
	// the plaintext password never reaches storage
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestRegisterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	directory, _ := InitUserDirectory(s)
	var validationError *serviceErrors.ValidationError
	_, err := directory.Register(context.Background(), "", "pw1")
	assert.ErrorAs(t, err, &validationError)
	_, err = directory.Register(context.Background(), "a@x.com", "")
	assert.ErrorAs(t, err, &validationError)
	_, err = directory.Register(context.Background(), "", "")
	assert.ErrorAs(t, err, &validationError)
}

func TestRegisterEmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	s.EXPECT().AddUser(context.Background(), gomock.Any()).Return(&storageErrors.EmailConflictError{Email: "a@x.com"})
	directory, _ := InitUserDirectory(s)
	_, err := directory.Register(context.Background(), "a@x.com", "pw1")
	var emailConflictError *storageErrors.EmailConflictError
	assert.ErrorAs(t, err, &emailConflictError)
}

func TestVerifyCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	assert.NoError(t, err)
	entry := modelstorage.UserStorageEntry{ID: "someUserID", Email: "a@x.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		email    string
		password string
		valid    bool
	}{
		{
			name:     "correct password",
			email:    "a@x.com",
			password: "pw1",
			valid:    true,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "pw2",
		},
		{
			name:     "stored hash offered as password",
			email:    "a@x.com",
			password: string(hash),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mocks.NewMockUserStorage(ctrl)
			s.EXPECT().RetrieveUserByEmail(context.Background(), tt.email).Return(entry, nil)
			directory, _ := InitUserDirectory(s)
			user, err := directory.VerifyCredentials(context.Background(), tt.email, tt.password)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, "someUserID", user.ID)
			} else {
				var unauthorizedError *serviceErrors.UnauthorizedError
				assert.ErrorAs(t, err, &unauthorizedError)
			}
		})
	}
}

func TestVerifyCredentialsUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	s.EXPECT().RetrieveUserByEmail(context.Background(), "missing@x.com").Return(modelstorage.UserStorageEntry{}, &storageErrors.UserNotFoundError{Key: "missing@x.com"})
	directory, _ := InitUserDirectory(s)
	_, err := directory.VerifyCredentials(context.Background(), "missing@x.com", "pw1")
	// unknown email is indistinguishable from a wrong password
	var unauthorizedError *serviceErrors.UnauthorizedError
	assert.ErrorAs(t, err, &unauthorizedError)
}

func TestVerifyCredentialsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	directory, _ := InitUserDirectory(s)
	_, err := directory.VerifyCredentials(context.Background(), "", "")
	var validationError *serviceErrors.ValidationError
	assert.ErrorAs(t, err, &validationError)
}

func TestFindByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	s.EXPECT().RetrieveUserByEmail(context.Background(), "a@x.com").Return(modelstorage.UserStorageEntry{ID: "someUserID", Email: "a@x.com", PasswordHash: "someHash"}, nil)
	directory, _ := InitUserDirectory(s)
	user, err := directory.FindByEmail(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "someUserID", user.ID)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestFindByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	s.EXPECT().RetrieveUserByID(context.Background(), "someUserID").Return(modelstorage.UserStorageEntry{ID: "someUserID", Email: "a@x.com", PasswordHash: "someHash"}, nil)
	directory, _ := InitUserDirectory(s)
	user, err := directory.FindByID(context.Background(), "someUserID")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestFindByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mocks.NewMockUserStorage(ctrl)
	s.EXPECT().RetrieveUserByID(context.Background(), "someUserID").Return(modelstorage.UserStorageEntry{}, &storageErrors.UserNotFoundError{Key: "someUserID"})
	directory, _ := InitUserDirectory(s)
	_, err := directory.FindByID(context.Background(), "someUserID")
	var userNotFoundError *storageErrors.UserNotFoundError
	assert.ErrorAs(t, err, &userNotFoundError)
}
