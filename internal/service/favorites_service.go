package service

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/middleware"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// FavoritesService manages the caller's favorites list.
type FavoritesService struct {
	store storage.Store
}

// NewFavoritesService creates a FavoritesService.
func NewFavoritesService(store storage.Store) *FavoritesService {
	return &FavoritesService{store: store}
}

type addFavoriteRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
}

// Add puts a recipe on the caller's favorites list. Adding a recipe that
// is already listed succeeds without duplicating it.
func (s *FavoritesService) Add(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	var req addFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.store.AddFavorite(r.Context(), username, req.RecipeID); err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Favorite added", "username", username, "recipe_id", req.RecipeID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "recipe added to favourites"})
}

// Remove takes a recipe off the caller's favorites list. Removing a
// recipe that is not listed succeeds as a no-op.
func (s *FavoritesService) Remove(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	recipeID := chi.URLParam(r, "recipeID")

	if err := s.store.RemoveFavorite(r.Context(), username, recipeID); err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Favorite removed", "username", username, "recipe_id", recipeID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "recipe removed from favourites"})
}

// List returns the caller's favorites in the order they were added.
func (s *FavoritesService) List(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	favorites, err := s.store.ListFavorites(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}
