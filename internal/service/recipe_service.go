package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/blob"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/images"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/middleware"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// maxFormMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxFormMemory = 1 << 20

// RecipeService handles recipe creation, listing, search and deletion.
type RecipeService struct {
	store storage.Store
	blobs blob.Store
}

// NewRecipeService creates a RecipeService.
func NewRecipeService(store storage.Store, blobs blob.Store) *RecipeService {
	return &RecipeService{store: store, blobs: blobs}
}

type searchResponse struct {
	Keyword string          `json:"keyword"`
	Recipes []models.Recipe `json:"recipes"`
}

// Create adds a recipe from a multipart form with fields name, info,
// time, steps and an optional image part. The image is validated and
// uploaded before the row is inserted; a rejected image means nothing is
// persisted.
func (s *RecipeService) Create(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	// Cap the whole body at twice the image limit so a moderately
	// oversized upload still parses far enough to get the specific
	// too-large error instead of a generic parse failure.
	r.Body = http.MaxBytesReader(w, r.Body, 2*images.MaxSize)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		respondBadRequest(w, "invalid multipart form")
		return
	}

	recipe := &models.Recipe{
		Owner:       username,
		Name:        r.FormValue("name"),
		Description: r.FormValue("info"),
		PrepTime:    r.FormValue("time"),
		Steps:       r.FormValue("steps"),
	}
	if recipe.Name == "" || recipe.Description == "" || recipe.PrepTime == "" || recipe.Steps == "" {
		respondBadRequest(w, "please fill out all required fields: name, info, time, steps")
		return
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()

		if err := images.Validate(header.Filename, header.Size); err != nil {
			respondError(w, r, err)
			return
		}

		key := images.StorageKey(header.Filename)
		ref, err := s.blobs.Put(r.Context(), key, images.ContentType(header.Filename), file)
		if err != nil {
			respondError(w, r, err)
			return
		}
		recipe.ImagePath = ref

	case errors.Is(err, http.ErrMissingFile):
		// image is optional

	default:
		respondBadRequest(w, "invalid image upload")
		return
	}

	if err := s.store.CreateRecipe(r.Context(), recipe); err != nil {
		// The row was never inserted; don't leave the blob orphaned.
		if recipe.ImagePath != "" {
			if delErr := s.blobs.Delete(r.Context(), recipe.ImagePath); delErr != nil {
				slog.Warn("Failed to clean up blob after insert failure", "ref", recipe.ImagePath, "error", delErr)
			}
		}
		respondError(w, r, err)
		return
	}

	slog.Info("Recipe created", "id", recipe.ID, "owner", username, "name", recipe.Name)
	respondJSON(w, http.StatusCreated, recipe)
}

// ListMine returns the caller's own recipes.
func (s *RecipeService) ListMine(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	recipes, err := s.store.ListRecipesByOwner(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipes)
}

// Get returns a single recipe by ID.
func (s *RecipeService) Get(w http.ResponseWriter, r *http.Request) {
	recipe, err := s.store.GetRecipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// Delete removes one of the caller's recipes. Only the owner may delete;
// the favorites cleanup happens atomically inside the store. The image
// blob is removed best-effort afterwards.
func (s *RecipeService) Delete(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())
	id := chi.URLParam(r, "id")

	recipe, err := s.store.GetRecipe(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if recipe.Owner != username {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "you can only delete your own recipes"})
		return
	}

	if err := s.store.DeleteRecipe(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	if recipe.ImagePath != "" {
		if err := s.blobs.Delete(r.Context(), recipe.ImagePath); err != nil {
			slog.Warn("Failed to delete recipe image", "ref", recipe.ImagePath, "error", err)
		}
	}

	slog.Info("Recipe deleted", "id", id, "owner", username)
	respondJSON(w, http.StatusOK, map[string]string{"message": "recipe deleted"})
}

// Search finds recipes by name substring. A missing keyword is a client
// error; a keyword with no matches is an empty result.
func (s *RecipeService) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		respondBadRequest(w, "please enter a keyword to search")
		return
	}

	recipes, err := s.store.SearchRecipes(r.Context(), keyword)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, searchResponse{Keyword: keyword, Recipes: recipes})
}

// Portfolio returns all recipes posted by the named user.
func (s *RecipeService) Portfolio(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "username")

	recipes, err := s.store.ListRecipesByOwner(r.Context(), owner)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, recipes)
}
