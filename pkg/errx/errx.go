// Package errx is the error taxonomy shared by services and HTTP handlers.
//
// Every expected failure carries a Kind (which fixes the HTTP status and the
// machine-readable code) plus a human-readable detail. Anything that is not an
// *Error is treated as KindInternal at the boundary.
package errx

import (
	"errors"
	"net/http"
)

// Kind classifies an error. The string value is the stable code sent to clients.
type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindInvalidOTP      Kind = "invalid_otp"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindTooManyRequests Kind = "too_many_requests"
	KindInternal        Kind = "internal_error"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindInvalidOTP:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind whose detail is empty or equal,
// so errors.Is(err, errx.New(errx.KindNotFound, "")) checks the kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func Validation(detail string) *Error   { return New(KindValidation, detail) }
func InvalidOTP(detail string) *Error   { return New(KindInvalidOTP, detail) }
func NotFound(detail string) *Error     { return New(KindNotFound, detail) }
func Conflict(detail string) *Error     { return New(KindConflict, detail) }
func Unauthorized(detail string) *Error { return New(KindUnauthorized, detail) }
func Forbidden(detail string) *Error    { return New(KindForbidden, detail) }

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the detail to show a client. Internal errors never leak
// their underlying cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Detail
	}
	return "internal server error"
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
