package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrScoreNotFound indicates a score report was not found
type ErrScoreNotFound struct {
	ID uuid.UUID
}

func (e *ErrScoreNotFound) Error() string {
	return fmt.Sprintf("score report not found: %s", e.ID)
}

// ErrHistoryDisabled indicates score history is not configured
type ErrHistoryDisabled struct{}

func (e *ErrHistoryDisabled) Error() string {
	return "score history is not configured (set DATABASE_URL)"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrScoreNotFound:
		return http.StatusNotFound
	case *ErrHistoryDisabled:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
