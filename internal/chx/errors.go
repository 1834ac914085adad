// Package chx holds the error kinds shared across the proto, compress and
// root packages, per spec.md §7.
package chx

import "github.com/go-faster/errors"

// Kind classifies a failure the way spec.md §7 enumerates them.
type Kind string

const (
	KindIO             Kind = "io"
	KindConnection     Kind = "connection"
	KindProtocol       Kind = "protocol"
	KindCompression    Kind = "compression"
	KindTypeMismatch   Kind = "type_mismatch"
	KindValidation     Kind = "validation"
	KindServer         Kind = "server"
	KindInvalidArg     Kind = "invalid_argument"
	KindNotImplemented Kind = "not_implemented"
)

// Error is a typed wrapper carrying a Kind alongside the usual wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func (k Kind) String() string { return string(k) }

// New builds a *Error of the given kind.
func New(k Kind, msg string) error {
	return &Error{Kind: k, Msg: msg}
}

// Newf is New with formatting.
func Newf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Msg: errors.Errorf(format, args...).Error()}
}

// Wrap attaches a Kind to an existing error.
func Wrap(k Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Msg: msg, Err: err}
}

// Is reports whether err (or something it wraps) carries the given Kind.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}
