package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// memUserStorage is an in-memory UserStorage for authenticator tests.
type memUserStorage struct {
	users map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{users: make(map[string]*models.User)}
}

func (m *memUserStorage) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := m.users[user.Username]; ok {
		return storage.ErrDuplicateUser
	}
	m.users[user.Username] = user
	return nil
}

func (m *memUserStorage) GetUser(_ context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		store := newMemUserStorage()
		a := NewPasswordAuthenticator(store)

		user, err := a.Register(ctx, "alice", "alice@example.com", "Alice", "Archer", "correct horse")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if user.PasswordHash == "correct horse" {
			t.Error("Password stored in plaintext")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")); err != nil {
			t.Errorf("Stored hash does not verify against original password: %v", err)
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemUserStorage())
		_, err := a.Register(ctx, "bob", "bob@example.com", "Bob", "Baker", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("taken username maps to ErrUsernameExists", func(t *testing.T) {
		store := newMemUserStorage()
		a := NewPasswordAuthenticator(store)

		if _, err := a.Register(ctx, "alice", "alice@example.com", "Alice", "Archer", "password1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		_, err := a.Register(ctx, "alice", "other@example.com", "Other", "Person", "password2")
		if !errors.Is(err, ErrUsernameExists) {
			t.Errorf("Expected ErrUsernameExists, got %v", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newMemUserStorage()
	a := NewPasswordAuthenticator(store)

	if _, err := a.Register(ctx, "alice", "alice@example.com", "Alice", "Archer", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("valid credentials return the user", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "alice", "password1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("Unexpected user: %s", user.Username)
		}
	})

	t.Run("wrong password and unknown username fail identically", func(t *testing.T) {
		_, wrongPass := a.Authenticate(ctx, "alice", "wrongpassword")
		_, unknownUser := a.Authenticate(ctx, "mallory", "password1")

		if !errors.Is(wrongPass, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
		}
		if !errors.Is(unknownUser, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", unknownUser)
		}
	})
}
