package v1

import (
	"errors"
	"net/http"

	"github.com/koinochrista/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if models.IsConflict(err) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Calculation errors
var (
	errNoExpensesSelected = errors.New("at least one expense must be selected")
)

// Suggestion errors
var (
	errDescriptionNotSet = errors.New("the description query parameter must be set")
	errNoRuleMatches     = errors.New("there is no match rule matching the description")
)
