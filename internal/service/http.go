// Package service implements the HTTP handlers that orchestrate the
// stores: signup/login, recipe CRUD and search, and favorites.
package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/auth"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/images"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage"
)

// validate checks request payload structs. Shared: validator caches
// struct metadata internally.
var validate = validator.New(validator.WithRequiredStructEnabled())

// errorResponse is the only shape errors take on the wire.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError converts err into a status code and a safe user-facing
// message. Store and infrastructure detail goes to the log only; the
// client never sees raw error text for unexpected failures.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var message string

	var validationErrs validator.ValidationErrors
	var badReq badRequestError

	switch {
	case errors.As(err, &badReq):
		status, message = http.StatusBadRequest, badReq.msg
	case errors.Is(err, storage.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, storage.ErrDuplicateRecipe):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, auth.ErrUsernameExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, auth.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, auth.ErrWeakPassword):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, images.ErrTooLarge):
		status, message = http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, images.ErrUnsupportedType):
		status, message = http.StatusUnsupportedMediaType, err.Error()
	case errors.As(err, &validationErrs):
		status, message = http.StatusBadRequest, "invalid request: "+validationErrs.Error()
	default:
		status, message = http.StatusInternalServerError, "something went wrong, try again"
		slog.Error("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	respondJSON(w, status, errorResponse{Error: message})
}

// decodeJSON parses and validates a JSON request body.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequestError{"invalid JSON body"}
	}
	return validate.Struct(v)
}

// badRequestError marks client mistakes that deserve a 400 with the
// message as-is (missing form fields, bad JSON).
type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

// respondBadRequest is respondError's shortcut for badRequestError,
// which has no sentinel to match on.
func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
