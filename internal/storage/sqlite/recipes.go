package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

const recipeColumns = "id, owner_username, name, description, prep_time, steps, image_path, created_at"

// CreateRecipe persists a new recipe, generating its ID.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO recipes (id, owner_username, name, description, prep_time, steps, image_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		recipe.ID,
		recipe.Owner,
		recipe.Name,
		recipe.Description,
		recipe.PrepTime,
		recipe.Steps,
		recipe.ImagePath,
		recipe.CreatedAt,
	)

	if isUniqueViolation(err, "recipes.owner_username") {
		return storage.ErrDuplicateRecipe
	}
	if err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

// GetRecipe retrieves a recipe by ID.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes WHERE id = ?"

	recipe := &models.Recipe{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&recipe.ID,
		&recipe.Owner,
		&recipe.Name,
		&recipe.Description,
		&recipe.PrepTime,
		&recipe.Steps,
		&recipe.ImagePath,
		&recipe.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// ListRecipesByOwner returns all recipes posted by the given user in
// insertion order.
func (s *SQLiteStore) ListRecipesByOwner(ctx context.Context, owner string) ([]models.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes WHERE owner_username = ? ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// SearchRecipes returns recipes whose name contains the keyword,
// case-insensitively. The keyword is escaped so that user-supplied
// wildcards match literally.
func (s *SQLiteStore) SearchRecipes(ctx context.Context, keyword string) ([]models.Recipe, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	query := "SELECT " + recipeColumns + ` FROM recipes WHERE name LIKE ? ESCAPE '\' ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// DeleteRecipe removes a recipe and all favorites entries referencing it
// inside a single transaction, so a favorites list can never keep a
// dangling reference to a half-deleted recipe.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM favorites WHERE recipe_id = ?", id); err != nil {
		return fmt.Errorf("failed to remove favorites references: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// scanRecipes drains rows selected with recipeColumns.
func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(
			&r.ID,
			&r.Owner,
			&r.Name,
			&r.Description,
			&r.PrepTime,
			&r.Steps,
			&r.ImagePath,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
