package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation    Kind = "VALIDATION_ERROR"
	KindNotFound      Kind = "NOT_FOUND"
	KindConflict      Kind = "CONFLICT"
	KindForbidden     Kind = "FORBIDDEN"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindRateLimited   Kind = "TOO_MANY_REQUESTS"
	KindExternal      Kind = "EXTERNAL_ERROR"
	KindInconsistency Kind = "INCONSISTENCY"
	KindInternal      Kind = "INTERNAL_ERROR"
)

type CustomError struct {
	HttpCode int
	Kind     Kind
	Message  string
}

func (e *CustomError) Error() string {
	return e.Message
}

func newError(code int, kind Kind, msg string) error {
	return &CustomError{
		HttpCode: code,
		Kind:     kind,
		Message:  msg,
	}
}

func BadRequest(msg string) error {
	return newError(http.StatusBadRequest, KindValidation, msg)
}

func NotFound(msg string) error {
	return newError(http.StatusNotFound, KindNotFound, msg)
}

func Conflict(msg string) error {
	return newError(http.StatusConflict, KindConflict, msg)
}

func Forbidden(msg string) error {
	return newError(http.StatusForbidden, KindForbidden, msg)
}

func UnauthorizedError(msg string) error {
	return newError(http.StatusUnauthorized, KindUnauthorized, msg)
}

// ExternalError is a failure of a collaborator (payment gateway, mail, object storage).
func ExternalError(msg string) error {
	return newError(http.StatusBadGateway, KindExternal, msg)
}

// Inconsistency reports a verified callback the service will not apply, such as one that contradicts a terminal state.
func Inconsistency(msg string) error {
	return newError(http.StatusUnprocessableEntity, KindInconsistency, msg)
}

func InternalServerError(msg string) error {
	return newError(http.StatusInternalServerError, KindInternal, msg)
}

func TooManyRequests(msg string) error {
	return newError(http.StatusTooManyRequests, KindRateLimited, msg)
}

// KindOf returns the kind of a CustomError anywhere in the chain, or KindInternal.
func KindOf(err error) Kind {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// IsRetryable reports whether the caller should retry the whole operation.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch KindOf(err) {
	case KindExternal, KindInternal:
		return true
	}
	return false
}
