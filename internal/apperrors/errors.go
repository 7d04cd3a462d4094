package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeMissingParameter    = "MISSING_PARAMETER"
	CodeChannelNotFound     = "CHANNEL_NOT_FOUND"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeUnconfigured        = "UNCONFIGURED"
)

// AppError is a classified failure that is safe to show to the end user.
// Message is fixed per kind; Cause is kept for logs only.
type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same code
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func newAppError(code, message string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Context:    context,
	}
}

// Sentinels for errors.Is comparisons
var (
	ErrMissingParameter    = &AppError{Code: CodeMissingParameter}
	ErrChannelNotFound     = &AppError{Code: CodeChannelNotFound}
	ErrUpstreamUnavailable = &AppError{Code: CodeUpstreamUnavailable}
	ErrUnconfigured        = &AppError{Code: CodeUnconfigured}
)

func NewMissingParameter(param string) *AppError {
	return newAppError(CodeMissingParameter,
		fmt.Sprintf("The %s parameter is required.", param),
		http.StatusBadRequest,
		map[string]any{"parameter": param})
}

func NewChannelNotFound(query string) *AppError {
	return newAppError(CodeChannelNotFound,
		"No public channel matches the given name.",
		http.StatusNotFound,
		map[string]any{"query": query})
}

func NewUpstreamUnavailable(operation string, cause error) *AppError {
	return newAppError(CodeUpstreamUnavailable,
		"Channel data could not be loaded. It may be private or unavailable.",
		http.StatusBadGateway,
		map[string]any{"operation": operation}).WithCause(cause)
}

func NewUnconfigured() *AppError {
	return newAppError(CodeUnconfigured,
		"The YouTube API key is not configured on the server.",
		http.StatusInternalServerError,
		nil)
}

// Classify returns err as an AppError. Anything unclassified is reported
// as an upstream failure so raw errors never reach the user.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewUpstreamUnavailable("unknown", err)
}
