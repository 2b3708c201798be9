package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when registering an already-used username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailRegistered is returned when registering an already-used email.
	ErrEmailRegistered = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. Unknown user and
	// wrong password share this value so the response reveals neither.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCaseStudyNotFound is returned when a case-study lookup misses.
	ErrCaseStudyNotFound = errors.New("case study not found")
	// ErrSlugTaken is returned when creating a case study with a slug that
	// already exists.
	ErrSlugTaken = errors.New("slug already taken")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// FieldError describes a single violated field in a validation failure.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationErrorResponse lists every violated field, not just the first.
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrEmailRegistered):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_REGISTERED")
	case errors.Is(err, ErrSlugTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "SLUG_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrCaseStudyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CASE_STUDY_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
