package auth

import (
	"context"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// (password, passkeys, OAuth, etc.) without changing the service layer.
type Authenticator interface {
	// Register creates a new user account with the given profile and
	// credential. Returns the created user or an error if registration
	// fails (including ErrUsernameExists for a taken username).
	Register(ctx context.Context, username, email, firstName, lastName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user
	// if successful. Fails with ErrInvalidCredentials for an unknown
	// username and for a wrong password, indistinguishably.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}
