package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-screener/internal/extraction"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrLexiconsMissing indicates the skill lexicon sources are not present
type ErrLexiconsMissing struct{}

func (e *ErrLexiconsMissing) Error() string {
	return "Skill files not found"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		lexiconsErr   *ErrLexiconsMissing
		tooLargeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &lexiconsErr):
		return http.StatusBadRequest
	case errors.Is(err, extraction.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
