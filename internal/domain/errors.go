package domain

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
	KindInternal
)

var statusByKind = map[ErrorKind]int{
	KindBadRequest:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindValidation:   http.StatusUnprocessableEntity,
	KindInternal:     http.StatusInternalServerError,
}

var nameByKind = map[ErrorKind]string{
	KindBadRequest:   "BadRequest",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindNotFound:     "NotFound",
	KindConflict:     "Conflict",
	KindValidation:   "ValidationFailed",
	KindInternal:     "InternalServerError",
}

func (k ErrorKind) StatusCode() int {
	if code, ok := statusByKind[k]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func (k ErrorKind) String() string {
	if name, ok := nameByKind[k]; ok {
		return name
	}
	return "InternalServerError"
}

// Error is the single domain error type; handlers map Kind to an HTTP
// status via the table above.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func BadRequest(message string) *Error {
	return NewError(KindBadRequest, message)
}

func Unauthorized(message string) *Error {
	return NewError(KindUnauthorized, message)
}

func Forbidden(message string) *Error {
	return NewError(KindForbidden, message)
}

func NotFound(message string) *Error {
	return NewError(KindNotFound, message)
}

func Conflict(message string) *Error {
	return NewError(KindConflict, message)
}

func Validation(message string) *Error {
	return NewError(KindValidation, message)
}

func Internal(message string) *Error {
	return NewError(KindInternal, message)
}

func AsError(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func IsKind(err error, kind ErrorKind) bool {
	if domainErr, ok := AsError(err); ok {
		return domainErr.Kind == kind
	}
	return false
}
