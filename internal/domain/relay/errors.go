package relay

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a relay failure. Every kind maps to exactly one HTTP status.
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION"
	KindUnauthorized  ErrorKind = "UNAUTHORIZED"
	KindMisconfigured ErrorKind = "MISCONFIGURED"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindGateway       ErrorKind = "GATEWAY"
	KindRateLimited   ErrorKind = "RATE_LIMITED"
	KindInternal      ErrorKind = "INTERNAL"
)

// Downstream platform errors. Platform clients wrap these with %w.
var (
	ErrPlatformUnavailable     = errors.New("relay: platform unreachable")
	ErrPlatformRejected        = errors.New("relay: platform rejected request")
	ErrPlatformNotFound        = errors.New("relay: platform resource not found")
	ErrPlatformInvalidResponse = errors.New("relay: invalid platform response")
)

// Error is the failure returned by relay use cases. Message is safe to show
// to callers; Err carries the underlying cause for logs only.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError reports a malformed request field
func NewValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NewUnauthorizedError reports a caller that failed authentication
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewMisconfiguredError reports a server setting required to serve the request
func NewMisconfiguredError(message string) *Error {
	return &Error{Kind: KindMisconfigured, Message: message}
}

// NewRateLimitedError reports a caller over its request budget
func NewRateLimitedError(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message}
}

// NewNotFoundError reports a resource the owning platform does not have
func NewNotFoundError(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: cause}
}

// NewGatewayError reports a failed downstream call
func NewGatewayError(message string, cause error) *Error {
	return &Error{Kind: KindGateway, Message: message, Err: cause}
}

// NewInternalError wraps an unexpected failure
func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: cause}
}

// AsError extracts a relay error from err. Anything else becomes an internal error.
func AsError(err error) *Error {
	var re *Error
	if errors.As(err, &re) {
		return re
	}
	return NewInternalError(err)
}

// IsKind reports whether err is a relay error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}
