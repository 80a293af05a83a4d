package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// AddFavorite appends a recipe to the user's favorites.
//
// INSERT OR IGNORE makes a duplicate add a no-op via the
// (username, recipe_id) uniqueness constraint, while a foreign key
// failure still surfaces when the recipe does not exist. One statement,
// so there is no check-then-act window against a concurrent delete.
func (s *SQLiteStore) AddFavorite(ctx context.Context, username, recipeID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO favorites (username, recipe_id) VALUES (?, ?)",
		username, recipeID,
	)
	if err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes a recipe from the user's favorites. Removing a
// recipe that is not in the list is a no-op.
func (s *SQLiteStore) RemoveFavorite(ctx context.Context, username, recipeID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE username = ? AND recipe_id = ?",
		username, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the user's favorite recipes in insertion order.
// The inner join naturally skips entries whose recipe has vanished.
func (s *SQLiteStore) ListFavorites(ctx context.Context, username string) ([]models.Recipe, error) {
	query := `
		SELECT r.id, r.owner_username, r.name, r.description, r.prep_time, r.steps, r.image_path, r.created_at
		FROM favorites f
		JOIN recipes r ON r.id = f.recipe_id
		WHERE f.username = ?
		ORDER BY f.id
	`

	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}
