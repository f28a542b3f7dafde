package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Sentinel errors for the catalog/variant engine. Callers classify with errors.Is,
// handlers translate to HTTP statuses via Status.
var (
	// ErrInvalidOptionSet: one or more option ids in the submitted variants are not
	// options of the product's subcategory.
	ErrInvalidOptionSet = errors.New("invalid product options")

	// ErrOptionValueMismatch: an option value id does not belong to its claimed option.
	ErrOptionValueMismatch = errors.New("option value does not belong to option")

	// ErrEmptyVariantSet: a product must carry at least one variant.
	ErrEmptyVariantSet = errors.New("at least one variant is required")

	// ErrDuplicateVariant: two variants of the same product share an identical
	// option-value assignment set.
	ErrDuplicateVariant = errors.New("duplicate variant option assignment")

	// ErrVariantOptionKeyInvalid signals an internal consistency bug: a variant key
	// escaped the union validation. Never a user input fault.
	ErrVariantOptionKeyInvalid = errors.New("variant contains invalid option key")

	// ErrInvalidBrandCategoryLink: the selected brand is not offerable for the
	// category owning the selected subcategory.
	ErrInvalidBrandCategoryLink = errors.New("brand is not linked to category")

	// ErrUnauthenticated: no caller identity on the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrOwnership: the caller does not own the target store.
	ErrOwnership = errors.New("unauthorized")

	// ErrNotFound: referenced store/product does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence: the transaction failed after validation passed. The wrapped
	// cause is for logs only, never for the response body.
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError reports a caller-input fault on a specific field, before any
// persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Persistence wraps an infrastructure failure so handlers can classify it while
// logs keep the full cause.
func Persistence(cause error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, cause)
}

// Status maps an error to the HTTP status the API surfaces.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err),
		errors.Is(err, ErrInvalidOptionSet),
		errors.Is(err, ErrOptionValueMismatch),
		errors.Is(err, ErrEmptyVariantSet),
		errors.Is(err, ErrDuplicateVariant),
		errors.Is(err, ErrInvalidBrandCategoryLink):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrOwnership):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-visible message. Persistence causes stay opaque.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error, please try again"
	}
	return err.Error()
}
