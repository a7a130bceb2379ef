package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/family-budget/backend/internal/aggregation"
	"github.com/family-budget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status code for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, aggregation.ErrNoDataForYear) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Family configuration errors
var (
	errNameMissing     = errors.New("the name must be set")
	errMemberNotFound  = fmt.Errorf("%w member with this ID", models.ErrResourceNotFound)
	errCategoryMissing = fmt.Errorf("%w category with this ID", models.ErrResourceNotFound)
	errAccountNotFound = fmt.Errorf("%w bank account with this ID", models.ErrResourceNotFound)
)
