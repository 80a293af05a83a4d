package service

import (
	"log/slog"
	"net/http"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/auth"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/middleware"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/models"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// AuthService handles signup, login, logout and the profile page.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		store:         store,
	}
}

type signupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=64"`
	LastName  string `json:"last_name" validate:"required,max=64"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type profileResponse struct {
	User      *models.User    `json:"user"`
	Favorites []models.Recipe `json:"favorites"`
}

// Signup registers a new account.
func (s *AuthService) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := s.authenticator.Register(r.Context(), req.Username, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.Info("Account created", "username", user.Username)
	respondJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and establishes a session: the token is
// returned in the body for API clients and set as a cookie for browsers.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("Login failed", "username", req.Username)
		respondError(w, r, err)
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwtManager.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("Login succeeded", "username", user.Username)
	respondJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout invalidates the browser session by expiring the cookie.
// Bearer tokens simply age out; there is no server-side revocation list.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Profile returns the caller's account details and resolved favorites.
func (s *AuthService) Profile(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	user, err := s.store.GetUser(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	favorites, err := s.store.ListFavorites(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profileResponse{User: user, Favorites: favorites})
}
