package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/auth"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/blob"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/middleware"
)

// RouterConfig groups the collaborators the HTTP surface needs.
type RouterConfig struct {
	Auth       *AuthService
	Recipes    *RecipeService
	Favorites  *FavoritesService
	JWTManager *auth.JWTManager

	// LocalUploads, when non-nil, is served under /uploads/ as static
	// files. Nil when images live in S3 and are served from there.
	LocalUploads *blob.LocalStore
}

// NewRouter builds the full route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Metrics(routePattern))

	requireAuth := middleware.RequireAuth(cfg.JWTManager, func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, auth.ErrMissingToken)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Brute-force protection on credential endpoints.
			r.Use(httprate.LimitByIP(10, time.Minute))
			r.Post("/signup", cfg.Auth.Signup)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/logout", cfg.Auth.Logout)
		})

		// Everything below requires a valid session.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/profile", cfg.Auth.Profile)

			r.Route("/recipes", func(r chi.Router) {
				r.Post("/", cfg.Recipes.Create)
				r.Get("/", cfg.Recipes.ListMine)
				r.Get("/search", cfg.Recipes.Search)
				r.Get("/{id}", cfg.Recipes.Get)
				r.Delete("/{id}", cfg.Recipes.Delete)
			})

			r.Get("/users/{username}/recipes", cfg.Recipes.Portfolio)

			r.Route("/favorites", func(r chi.Router) {
				r.Post("/", cfg.Favorites.Add)
				r.Get("/", cfg.Favorites.List)
				r.Delete("/{recipeID}", cfg.Favorites.Remove)
			})
		})
	})

	if cfg.LocalUploads != nil {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.LocalUploads.Dir())))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	return r
}

// routePattern returns the matched chi route template for metrics
// labels, falling back to the raw path before routing completes.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
