package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidEmail is returned when an email fails format validation.
	ErrInvalidEmail = errors.New("please enter a valid email")
	// ErrUserExists is returned when registering an already registered email.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned on login failure. It deliberately does
	// not say whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTransactionNotFound is returned when no transaction matches the
	// (transactionId, userId) pair.
	ErrTransactionNotFound = errors.New("transaction not found or unauthorized")
	// ErrNoTransactions is returned when a bulk delete matched nothing.
	ErrNoTransactions = errors.New("no transactions found to delete")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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

// MapErrorToHTTP maps domain errors to HTTP errors. Duplicate registration is
// a 400, not a 409: the API contract folds conflicts into validation failures.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrNoTransactions):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_TRANSACTIONS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
