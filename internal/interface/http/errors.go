// Package handlers contains the gin HTTP handlers. They bind and validate
// payloads, delegate to the application services, and translate domain
// errors into client responses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

// statusFor maps the domain error taxonomy onto HTTP status codes. Anything
// unrecognized is a server error.
func statusFor(err error) int {
	var (
		validation  entity.ValidationError
		notFound    entity.NotFoundError
		duplicate   entity.DuplicateError
		capacity    entity.CapacityError
		state       entity.StateError
		unavailable entity.UnavailableError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &state), errors.As(err, &unavailable):
		return http.StatusConflict
	case errors.As(err, &capacity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage hides internals for server errors and passes domain messages
// through for everything else.
func clientMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
