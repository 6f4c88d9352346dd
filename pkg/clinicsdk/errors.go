package clinicsdk

import (
	"errors"
	"fmt"
)

// Stable error codes carried in the "code" field of error responses.
const (
	CodeValidation      = "validation_error"
	CodeInvalidOTP      = "invalid_otp"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeTooManyRequests = "too_many_requests"
	CodeInternal        = "internal_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Code       string `json:"code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clinic: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// StatusOf returns the HTTP status of an *APIError, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
