package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/tasky/internal/service"
	"github.com/MKhiriev/tasky/internal/store"
	"github.com/MKhiriev/tasky/internal/utils"
)

// writeError converts err to its canonical status code and JSON message body.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteMessage(w, messageFromError(err), statusFromError(err))
}

// errorStatusMap fixes the HTTP status for every well-known service and
// store error. Conflicts map to 409 and missing owned resources to 404;
// a foreign user's task is reported as 404, never 403, so existence is not
// disclosed.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrTaskNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the client-facing message for err: the sentinel's
// own text for mapped errors (including wrapped detail for validation
// failures), a generic one otherwise so internals do not leak.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		// validation errors carry the field name, e.g. "firstName is required"
		return trimWrapPrefix(err, service.ErrInvalidDataProvided)
	case errors.Is(err, service.ErrWeakPassword):
		return service.ErrWeakPassword.Error()
	case errors.Is(err, service.ErrWrongPassword):
		return "invalid login or password"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "invalid or expired token"
	case errors.Is(err, store.ErrUserAlreadyExists):
		return store.ErrUserAlreadyExists.Error()
	case errors.Is(err, store.ErrUserNotFound):
		return store.ErrUserNotFound.Error()
	case errors.Is(err, store.ErrTaskNotFound):
		return store.ErrTaskNotFound.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// trimWrapPrefix returns the detail part of a validation error of the form
// "invalid data provided: firstName is required", falling back to the
// sentinel text when no detail was attached.
func trimWrapPrefix(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "

	if idx := strings.LastIndex(msg, prefix); idx >= 0 {
		return msg[idx+len(prefix):]
	}
	return sentinel.Error()
}
