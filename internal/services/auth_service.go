package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"socialnino/internal/models"
	"socialnino/internal/storage"
)

// ErrAuthFailed deliberately carries no detail: wrong password, unknown
// user and malformed input all surface the same generic message.
var ErrAuthFailed = errors.New("authentication failed")

type AuthServiceInterface interface {
	Register(username, password string) error
	Verify(username, password string) error
}

type AuthService struct {
	creds *storage.Collection[models.Credential]
}

func NewAuthService(store *storage.Store, reg *storage.Registry) AuthServiceInterface {
	return &AuthService{
		creds: storage.NewCollection[models.Credential](store, storage.KeyCredentials, "credentials", reg),
	}
}

func (as *AuthService) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrAuthFailed
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return ErrAuthFailed
	}

	// The duplicate check and the insert share the collection lock so
	// two racing registrations cannot both pass the check.
	taken := false
	as.creds.Update(func(items []models.Credential) []models.Credential {
		for _, c := range items {
			if c.Username == username {
				taken = true
				return items
			}
		}
		return append(items, models.Credential{
			Username:       username,
			HashedPassword: string(hashed),
			CreatedAt:      models.NewTimestamp(),
		})
	})
	if taken {
		return ErrAuthFailed
	}
	return nil
}

func (as *AuthService) Verify(username, password string) error {
	for _, c := range as.creds.All() {
		if c.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.HashedPassword), []byte(password)) != nil {
			return ErrAuthFailed
		}
		return nil
	}
	return ErrAuthFailed
}
