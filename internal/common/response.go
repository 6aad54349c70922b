package common

import "errors"

// ResponseStatus values used in every envelope.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Meta carries pagination info on paginated endpoints only.
type Meta struct {
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int64 `json:"currentPage"`
}

// Envelope is the uniform response body every endpoint returns.
// Data is omitted on failures that carry no payload; Meta is present only
// on paginated responses.
type Envelope struct {
	Status     string `json:"Status"`
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message"`
	Data       any    `json:"Data,omitempty"`
	Meta       *Meta  `json:"Meta,omitempty"`
}

// NewSuccess builds a success envelope.
func NewSuccess(statusCode int, message string, data any) Envelope {
	return Envelope{
		Status:     StatusSuccess,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}
}

// NewSuccessPaged builds a success envelope with pagination metadata.
func NewSuccessPaged(statusCode int, message string, data any, currentPage, totalPages int64) Envelope {
	env := NewSuccess(statusCode, message, data)
	env.Meta = &Meta{TotalPages: totalPages, CurrentPage: currentPage}
	return env
}

// NewFailure builds a failure envelope. Only the message string is exposed,
// never the underlying error object.
func NewFailure(statusCode int, message string) Envelope {
	return Envelope{
		Status:     StatusFailed,
		StatusCode: statusCode,
		Message:    message,
	}
}

// FromError maps any error onto a failure envelope, using the taxonomy's
// status code and message when the error is an *Error.
func FromError(err error) Envelope {
	var appErr *Error
	if errors.As(err, &appErr) {
		return NewFailure(appErr.StatusCode, appErr.Message)
	}
	return NewFailure(StatusInternalServerError, "Internal server error")
}
