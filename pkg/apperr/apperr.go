// Package apperr classifies use-case errors so the HTTP layer can pick a status
// code without knowing every domain package.
package apperr

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindLimit
	KindUnauthorized
)

// Error is a classified error. Msg is safe to show to the caller.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// Validation builds an ad-hoc validation error.
func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

func Forbidden(msg string) error { return &Error{Kind: KindForbidden, Msg: msg} }

// KindOf reports the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-facing message of err, or fallback for internal errors.
func Message(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return fallback
}
