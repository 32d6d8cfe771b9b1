// Package server provides the HTTP REST API around the scoring engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-fit/internal/db"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrHistoryDisabled indicates a history endpoint was called without a
// configured database.
type ErrHistoryDisabled struct{}

func (e *ErrHistoryDisabled) Error() string {
	return "report history is not enabled on this server"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var historyErr *ErrHistoryDisabled
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &historyErr):
		return http.StatusNotFound
	case errors.Is(err, db.ErrReportNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
