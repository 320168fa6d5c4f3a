package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of an application error
type Kind string

const (
	KindValidation Kind = "validation_error"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindUpstream   Kind = "upstream_error"
	KindEncoding   Kind = "encoding_error"
	KindStorage    Kind = "storage_error"
)

// Error carries the HTTP status and human-readable message surfaced to callers
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, status int, message string, err error) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func Conflict(message string) *Error {
	return New(KindConflict, http.StatusConflict, message, nil)
}

// Upstream maps a failed call to the AI service. A zero status means the
// service was unreachable and becomes 502.
func Upstream(status int, message string, err error) *Error {
	if status == 0 {
		status = http.StatusBadGateway
	}
	return New(KindUpstream, status, message, err)
}

func Encoding(err error) *Error {
	return New(KindEncoding, http.StatusInternalServerError, "", err)
}

func Storage(err error) *Error {
	return New(KindStorage, http.StatusInternalServerError, "", err)
}

// From returns the *Error in err's chain, or wraps err as a storage error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Storage(err)
}

// PublicMessage is the text placed in the JSON error body.
func (e *Error) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
