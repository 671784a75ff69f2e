package dto

import (
	"net/http"
	"time"

	"github.com/supplierhub/relay/internal/domain/relay"
)

// Default envelope messages
const (
	MessageSuccess = "Success"
	MessageError   = "Error"
)

// Response is the envelope returned by every relay endpoint
type Response struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

var now = time.Now

// NewResponse creates an envelope. An empty message defaults to Success
// below 400 and Error otherwise.
func NewResponse(status int, data any, message string) Response {
	if message == "" {
		message = MessageSuccess
		if status >= http.StatusBadRequest {
			message = MessageError
		}
	}
	return Response{
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: relay.FormatTimestamp(now()),
	}
}

// NewSuccessResponse creates a 200 envelope
func NewSuccessResponse(data any, message string) Response {
	return NewResponse(http.StatusOK, data, message)
}

// NewErrorResponse creates an error envelope without data
func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, nil, message)
}
