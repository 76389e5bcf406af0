package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeStateConflict Code = "STATE_CONFLICT"
	CodeInternal      Code = "INTERNAL_ERROR"
	CodeDependency    Code = "DEPENDENCY_ERROR"
)

// Metadata is how a code surfaces at the HTTP edge. PublicMessage is shown
// when the error's own message must stay internal.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	// bad payloads, coordinates and ids
	CodeValidation: {HTTPStatus: http.StatusBadRequest, PublicMessage: "request rejected: check the submitted fields", DetailsAllowed: true},
	// missing or expired session token
	CodeUnauthorized: {HTTPStatus: http.StatusUnauthorized, PublicMessage: "sign in again to continue"},
	// role or establishment outside the caller's reach
	CodeForbidden: {HTTPStatus: http.StatusForbidden, PublicMessage: "not allowed for this role or establishment"},
	CodeNotFound:  {HTTPStatus: http.StatusNotFound, PublicMessage: "furniture, room or record not found"},
	// duplicate furniture ids, already-closed revenue days
	CodeConflict: {HTTPStatus: http.StatusConflict, PublicMessage: "record already exists or was changed elsewhere"},
	// table status moves that the current status forbids
	CodeStateConflict: {HTTPStatus: http.StatusUnprocessableEntity, PublicMessage: "table status does not allow this action", DetailsAllowed: true},
	CodeInternal:      {HTTPStatus: http.StatusInternalServerError, Retryable: true, PublicMessage: "room builder failed unexpectedly"},
	// backend API, database, redis or scene assets unreachable
	CodeDependency: {HTTPStatus: http.StatusServiceUnavailable, Retryable: true, PublicMessage: "backend or storage unavailable, retry shortly", DetailsAllowed: true},
}

// MetadataFor falls back to the internal metadata for unknown codes.
func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Retryable reports whether a caller may repeat the failed operation as is.
// Untyped errors count as internal.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if typed := As(err); typed != nil {
		return MetadataFor(typed.code).Retryable
	}
	return MetadataFor(CodeInternal).Retryable
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsCode reports whether err carries the given typed code anywhere in its chain.
func IsCode(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.code == code
}
