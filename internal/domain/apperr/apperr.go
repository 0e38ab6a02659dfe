package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the error type every use case returns to its caller.
// errors.Is matches on Kind, and on Reason when the target sets one.
type Error struct {
	Kind    Kind
	Reason  string
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// WithField returns a copy tagged with the offending input field.
func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field
	return &cp
}

// Wrap returns a copy carrying cause.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

// Kind-only sentinels for broad matching.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrInternal   = &Error{Kind: KindInternal}
)

func Validation(reason, msg string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Message: msg}
}

func Conflict(reason, msg string) *Error {
	return &Error{Kind: KindConflict, Reason: reason, Message: msg}
}

func NotFound(reason, msg string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason, Message: msg}
}

// Internal wraps a persistence or infrastructure failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Reason: "internal", Message: "internal error", Err: cause}
}

// KindOf reports the kind of err, or KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Ensure keeps *Error values intact and wraps everything else as Internal.
func Ensure(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Internal(err)
}
