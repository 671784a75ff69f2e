package dto

import (
	"net/http"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// ErrorKindHTTPStatus maps relay error kinds to HTTP status codes
var ErrorKindHTTPStatus = map[relay.ErrorKind]int{
	relay.KindValidation:    http.StatusBadRequest,
	relay.KindUnauthorized:  http.StatusUnauthorized,
	relay.KindMisconfigured: http.StatusInternalServerError,
	relay.KindNotFound:      http.StatusNotFound,
	relay.KindGateway:       http.StatusBadGateway,
	relay.KindRateLimited:   http.StatusTooManyRequests,
	relay.KindInternal:      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error kind.
// Unknown kinds map to 500.
func GetHTTPStatus(kind relay.ErrorKind) int {
	if status, ok := ErrorKindHTTPStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError converts any error into its status code and envelope. Errors
// that are not relay errors are reported as internal errors.
func FromError(err error) (int, Response) {
	re := relay.AsError(err)
	status := GetHTTPStatus(re.Kind)
	return status, NewErrorResponse(status, re.Message)
}
