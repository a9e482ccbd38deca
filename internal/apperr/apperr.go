// Package apperr defines the structured rejection used across the API.
//
// Every failure that can reach a client is an *Error carrying a Kind (which
// maps 1:1 onto an HTTP status) and an optional client-safe message. The
// underlying cause, when present, is kept for logs via Unwrap and is never
// rendered.
//
// Taxonomy:
//   - KindBadInput  → 400 (malformed ids, missing fields, invalid query values)
//   - KindNotFound  → 404 (referenced entity absent)
//   - KindConflict  → 409 (uniqueness violation)
//   - KindInternal  → 500 (anything unanticipated)
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a rejection.
type Kind int

const (
	KindInternal Kind = iota
	KindBadInput
	KindNotFound
	KindConflict
)

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case KindBadInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage is the body used when an error carries no message of its own.
func (k Kind) DefaultMessage() string {
	switch k {
	case KindBadInput:
		return "Bad Request"
	case KindNotFound:
		return "Resource Not Found"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal Server Error"
	}
}

func (k Kind) String() string {
	switch k {
	case KindBadInput:
		return "bad_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a structured rejection.
type Error struct {
	Kind Kind
	// Msg is safe to show to clients. Empty means "use the kind's default".
	Msg string
	// Err is the cause. Logged, never rendered.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message()
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code of the error's kind.
func (e *Error) Status() int { return e.Kind.Status() }

// Message returns the client-facing message. Internal errors always render
// the generic text so that causes never leak.
func (e *Error) Message() string {
	if e.Kind == KindInternal || e.Msg == "" {
		return e.Kind.DefaultMessage()
	}
	return e.Msg
}

// BadRequest builds a KindBadInput error.
func BadRequest(msg string) *Error { return &Error{Kind: KindBadInput, Msg: msg} }

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// Conflict builds a KindConflict error.
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

// Internal wraps an unexpected cause.
func Internal(err error) *Error { return &Error{Kind: KindInternal, Err: err} }

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf reports the kind of err; non-structured errors are KindInternal.
func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a structured error of the given kind.
func IsKind(err error, k Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == k
}
