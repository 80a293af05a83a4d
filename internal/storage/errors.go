package storage

import "errors"

// Sentinel errors returned by Store implementations. Services match on
// these with errors.Is and translate them to user-facing responses; the
// wrapped detail only ever reaches the operator log.
var (
	// ErrNotFound indicates the requested user or recipe does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUser indicates the username is already taken. Raised by
	// the database uniqueness constraint, not a pre-insert read.
	ErrDuplicateUser = errors.New("username already taken")

	// ErrDuplicateRecipe indicates the owner already has a recipe with
	// that name.
	ErrDuplicateRecipe = errors.New("recipe name already exists for this user")
)
