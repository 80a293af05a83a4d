package service

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
)

func TestRecipeEndpoints(t *testing.T) {
	t.Run("create assigns an ID and lists under the owner", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		recipe, resp := ts.createRecipe(token, "Pancakes", nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create returned %d", resp.StatusCode)
		}
		if recipe.ID == "" {
			t.Error("expected a generated recipe ID")
		}
		if recipe.Owner != "alice" {
			t.Errorf("owner = %q, want alice", recipe.Owner)
		}

		var mine []models.Recipe
		ts.do(http.MethodGet, "/api/v1/recipes", token, nil, "", &mine)
		if len(mine) != 1 || mine[0].Name != "Pancakes" {
			t.Errorf("unexpected recipe list: %+v", mine)
		}
	})

	t.Run("duplicate name per owner conflicts, same name across owners is fine", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		ts.signup("bob")
		aliceToken := ts.login("alice")
		bobToken := ts.login("bob")

		first, resp := ts.createRecipe(aliceToken, "Pancakes", nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create returned %d", resp.StatusCode)
		}

		_, resp = ts.createRecipe(aliceToken, "Pancakes", nil)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("duplicate create: expected 409, got %d", resp.StatusCode)
		}

		bobs, resp := ts.createRecipe(bobToken, "Pancakes", nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("bob's create returned %d", resp.StatusCode)
		}
		if bobs.ID == first.ID {
			t.Error("expected distinct IDs across owners")
		}
	})

	t.Run("missing form fields are a client error", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		_, resp := ts.createRecipe(token, "", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400 for missing name, got %d", resp.StatusCode)
		}
	})

	t.Run("only the owner can delete", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		ts.signup("bob")
		aliceToken := ts.login("alice")
		bobToken := ts.login("bob")

		recipe, _ := ts.createRecipe(aliceToken, "Pancakes", nil)

		resp := ts.do(http.MethodDelete, "/api/v1/recipes/"+recipe.ID, bobToken, nil, "", nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("non-owner delete: expected 403, got %d", resp.StatusCode)
		}

		// Still there for the owner
		resp = ts.do(http.MethodGet, "/api/v1/recipes/"+recipe.ID, aliceToken, nil, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("recipe gone after rejected delete: %d", resp.StatusCode)
		}

		resp = ts.do(http.MethodDelete, "/api/v1/recipes/"+recipe.ID, aliceToken, nil, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("owner delete: expected 200, got %d", resp.StatusCode)
		}

		resp = ts.do(http.MethodGet, "/api/v1/recipes/"+recipe.ID, aliceToken, nil, "", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
		}
	})

	t.Run("deleting an unknown recipe is 404", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		resp := ts.do(http.MethodDelete, "/api/v1/recipes/nonexistent-id", token, nil, "", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("portfolio lists another user's recipes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		ts.signup("bob")
		aliceToken := ts.login("alice")
		bobToken := ts.login("bob")

		ts.createRecipe(aliceToken, "Pancakes", nil)
		ts.createRecipe(aliceToken, "Waffles", nil)

		var portfolio []models.Recipe
		resp := ts.do(http.MethodGet, "/api/v1/users/alice/recipes", bobToken, nil, "", &portfolio)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("portfolio returned %d", resp.StatusCode)
		}
		if len(portfolio) != 2 {
			t.Errorf("expected 2 recipes, got %d", len(portfolio))
		}
	})
}

func TestRecipeSearchEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.signup("alice")
	token := ts.login("alice")

	ts.createRecipe(token, "Chocolate Cake", nil)
	ts.createRecipe(token, "Omelette", nil)

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		var result searchResponse
		resp := ts.do(http.MethodGet, "/api/v1/recipes/search?keyword=cake", token, nil, "", &result)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("search returned %d", resp.StatusCode)
		}
		if len(result.Recipes) != 1 || result.Recipes[0].Name != "Chocolate Cake" {
			t.Errorf("unexpected results: %+v", result.Recipes)
		}
	})

	t.Run("no match is an empty 200, not an error", func(t *testing.T) {
		var result searchResponse
		resp := ts.do(http.MethodGet, "/api/v1/recipes/search?keyword=sushi", token, nil, "", &result)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("search returned %d", resp.StatusCode)
		}
		if len(result.Recipes) != 0 {
			t.Errorf("expected no results, got %+v", result.Recipes)
		}
	})

	t.Run("missing keyword is a 400", func(t *testing.T) {
		resp := ts.do(http.MethodGet, "/api/v1/recipes/search", token, nil, "", nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestRecipeImageUpload(t *testing.T) {
	t.Run("valid image is stored and served", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		recipe, resp := ts.createRecipe(token, "Pancakes", smallImage("pancakes.JPG"))
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create returned %d", resp.StatusCode)
		}
		if !strings.HasPrefix(recipe.ImagePath, "/uploads/") {
			t.Fatalf("unexpected image path: %q", recipe.ImagePath)
		}

		// The reference must be fetchable as a static file.
		fetch := ts.do(http.MethodGet, recipe.ImagePath, "", nil, "", nil)
		if fetch.StatusCode != http.StatusOK {
			t.Errorf("GET %s returned %d", recipe.ImagePath, fetch.StatusCode)
		}
	})

	t.Run("bad extension is rejected and nothing persists", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		_, resp := ts.createRecipe(token, "Malware", smallImage("evil.exe"))
		if resp.StatusCode != http.StatusUnsupportedMediaType {
			t.Errorf("expected 415, got %d", resp.StatusCode)
		}

		var mine []models.Recipe
		ts.do(http.MethodGet, "/api/v1/recipes", token, nil, "", &mine)
		if len(mine) != 0 {
			t.Errorf("recipe persisted despite rejected image: %+v", mine)
		}
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		big := &testImage{filename: "big.png", data: make([]byte, 6<<20)}
		_, resp := ts.createRecipe(token, "Huge", big)
		if resp.StatusCode != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", resp.StatusCode)
		}
	})

	t.Run("image file is removed when the recipe is deleted", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signup("alice")
		token := ts.login("alice")

		recipe, _ := ts.createRecipe(token, "Pancakes", smallImage("pancakes.png"))
		resp := ts.do(http.MethodDelete, "/api/v1/recipes/"+recipe.ID, token, nil, "", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("delete returned %d", resp.StatusCode)
		}

		entries, err := os.ReadDir(ts.uploads)
		if err != nil {
			t.Fatalf("failed to read uploads dir: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("uploads dir not empty after delete: %v", entries)
		}
	})
}
