package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession    = errors.New("no session")
	ErrKeyNotFound  = errors.New("key not found")
	ErrStepMismatch = errors.New("onboarding step does not accept this change")
)

// Error kinds. Every failure surfaced by a workflow wraps exactly one of these.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNetwork          = errors.New("network error")
	ErrProtocol         = errors.New("protocol error")
)

type Error struct {
	Kind    error
	Op      string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}

	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ValidationFailed(op, field, message string) *Error {
	return &Error{Kind: ErrValidation, Op: op, Field: field, Message: message}
}

func NotAuthenticated(op string, err error) *Error {
	return &Error{Kind: ErrNotAuthenticated, Op: op, Message: "sign in required", Err: err}
}

func NetworkFailure(op string, err error) *Error {
	return &Error{Kind: ErrNetwork, Op: op, Message: "could not reach the partners service", Err: err}
}

// ProtocolFailure never carries the raw response body in its message.
func ProtocolFailure(op string, format string, args ...any) *Error {
	return &Error{Kind: ErrProtocol, Op: op, Message: "unexpected response from the partners service", Err: fmt.Errorf(format, args...)}
}

// KindOf returns the taxonomy sentinel carried by err, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotAuthenticated, ErrNetwork, ErrProtocol} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}

// FieldOf returns the offending field of a validation error, if any.
func FieldOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Field
	}

	return ""
}
