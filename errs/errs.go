// Package errs defines the structured error taxonomy of spec §7. Errors
// raised by this module's own checks carry one of the five kinds below;
// errors reported by the pairing package (hash-to-curve, pairing, scalar
// sampling) are passed through as github.com/pkg/errors-wrapped errors
// that carry no Kind. None is swallowed, and none degrades to a null
// sentinel the way the reference Python source did for over-level
// multiplications.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure the way spec §7 enumerates them.
type Kind int

const (
	// BackendFailure means the pairing backend signalled an error: a bad
	// point, a non-canonical encoding, or an RNG failure. Fatal.
	BackendFailure Kind = iota
	// TypeMismatch means the caller combined incompatible ciphertext
	// kinds (multiplying two CT_G1s, multiplying a CT_2 by a ciphertext).
	TypeMismatch
	// LevelMismatch means the caller added ciphertexts at different
	// recursive levels.
	LevelMismatch
	// LevelExceeded means a multiplication's result level would exceed
	// 2d.
	LevelExceeded
	// DecryptionFailed means the bounded discrete-log search exhausted
	// its bound without a match.
	DecryptionFailed
)

func (k Kind) String() string {
	switch k {
	case BackendFailure:
		return "BackendFailure"
	case TypeMismatch:
		return "TypeMismatch"
	case LevelMismatch:
		return "LevelMismatch"
	case LevelExceeded:
		return "LevelExceeded"
	case DecryptionFailed:
		return "DecryptionFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by this module. It wraps an
// optional underlying cause with github.com/pkg/errors so callers still
// get a stack trace at the point of origin.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("lhe: %s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("lhe: %s: %s", e.Kind, e.msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// New builds a bare Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Newf builds a bare Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying cause with a kind and message, preserving
// the pkg/errors stack trace on cause.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, msg: msg, err: errors.WithStack(cause)}
}

// Is reports whether err is an *Error of the given kind, unwrapping
// through any wrapping errors.Is understands.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
