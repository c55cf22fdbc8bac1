package handler

import (
	"errors"
	"net/http"

	"vaccineai-service/internal/domain"
)

// statusForError aggregates the pipeline stage errors at the HTTP boundary:
// unknown combinations are not-found, bad request data is a client error,
// anything touching artifacts or inference is a server error. Error bodies
// keep the upstream field names; only the status code is mapped here.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCombinationNotSupported):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrNonFiniteFeature):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMetadataUnavailable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
