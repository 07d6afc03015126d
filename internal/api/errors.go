package api

import (
	"errors"
	"net/http"

	"chmura-plikow/internal/service"
)

// writeServiceError maps a process-layer failure to an HTTP status.
// Ownership violations are deliberately masked as 404 so callers cannot
// probe which identifiers exist.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidLogin), errors.Is(err, service.ErrInvalidPassword):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUserAlreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrUserNotAuthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrTokenNotFound), errors.Is(err, service.ErrTokenExpired):
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFolderNotFound),
		errors.Is(err, service.ErrFileNotFound),
		errors.Is(err, service.ErrRootFolderNotFound),
		errors.Is(err, service.ErrOwnershipViolated):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
