// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
)

// Store defines the interface for user, recipe and favorites persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Callers always pass the acting identity explicitly; the store never
// reads ambient request state.
type Store interface {
	// CreateUser persists a new user. Returns ErrDuplicateUser if the
	// username is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by username. Returns ErrNotFound if no
	// such user exists.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// CreateRecipe persists a new recipe, assigning recipe.ID and
	// recipe.CreatedAt. Returns ErrDuplicateRecipe if the owner already
	// has a recipe with the same name, ErrNotFound if the owner does not
	// exist.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error

	// GetRecipe retrieves a recipe by ID. Returns ErrNotFound if absent.
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// ListRecipesByOwner returns all recipes posted by the given user, in
	// insertion order. An owner with no recipes yields an empty slice.
	ListRecipesByOwner(ctx context.Context, owner string) ([]models.Recipe, error)

	// SearchRecipes returns recipes whose name contains the keyword,
	// case-insensitively. No match yields an empty slice, not an error.
	SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error)

	// DeleteRecipe removes a recipe and, in the same transaction, every
	// favorites entry referencing it. Returns ErrNotFound if absent.
	DeleteRecipe(ctx context.Context, id string) error

	// AddFavorite appends a recipe to the user's favorites. Adding a
	// recipe that is already a favorite is a no-op, not an error.
	// Returns ErrNotFound if the recipe does not exist.
	AddFavorite(ctx context.Context, username, recipeID string) error

	// RemoveFavorite removes a recipe from the user's favorites. Removing
	// a recipe that is not a favorite is a no-op.
	RemoveFavorite(ctx context.Context, username, recipeID string) error

	// ListFavorites returns the user's favorite recipes in the order they
	// were added, fully resolved. Entries whose recipe no longer exists
	// are skipped.
	ListFavorites(ctx context.Context, username string) ([]models.Recipe, error)

	// Close releases any resources held by the store.
	Close() error
}
