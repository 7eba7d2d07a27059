package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies every failure the API can report. Anything that doesn't
// fit the first three buckets is Unexpected.
type Kind int

const (
	NotFound Kind = iota + 1
	Validation
	Persistence
	Unexpected
)

// Error carries a caller-safe message plus the failure kind. The wrapped
// cause (if any) stays server-side; only Message leaves the process.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// PersistenceWrap tags a store failure with a caller-safe summary.
func PersistenceWrap(err error, msg string) *Error {
	return &Error{Kind: Persistence, Message: msg, Err: err}
}

// FromDB translates a gorm lookup error: record-not-found becomes NotFound
// with the given message, everything else becomes Persistence.
func FromDB(err error, notFoundMsg string) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: NotFound, Message: notFoundMsg}
	}
	return &Error{Kind: Persistence, Message: "database error", Err: err}
}

// StatusOf maps an error to the HTTP status mirrored into the response body.
// Unknown error types count as Unexpected.
func StatusOf(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Kind {
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the caller-safe message for an error. Raw errors never
// leak their text; they collapse to a generic summary.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "An unexpected error occurred"
}
