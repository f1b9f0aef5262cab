// Package ferr defines the core's error taxonomy (§7). The core only
// signals a Kind and a wrapped cause; presentation (formatting, logging,
// translation) is an external collaborator's job, not this package's.
package ferr

import "fmt"

// Kind classifies why a decode operation failed or was declined.
type Kind int

const (
	// InvalidArgument: caller passed a null/empty buffer or an unsupported codepage.
	InvalidArgument Kind = iota
	// OutOfBounds: a read would exceed the declared slice length.
	OutOfBounds
	// Truncated: a declared size field refers past the buffer end.
	Truncated
	// SignatureMismatch: a fixed magic is absent where required.
	SignatureMismatch
	// Unsupported: the shape is syntactically plausible but not covered by
	// a known decoder. Non-fatal; absorbed by the dispatcher.
	Unsupported
	// ChecksumMismatch: an offset-to-version back-reference disagrees.
	// Non-fatal; the value is still returned.
	ChecksumMismatch
	// Oversize: a string or block would exceed the configured cap.
	Oversize
	// InsufficientSpace: caller-provided output buffer too small for a
	// size-query copy-out.
	InsufficientSpace
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case OutOfBounds:
		return "OutOfBounds"
	case Truncated:
		return "Truncated"
	case SignatureMismatch:
		return "SignatureMismatch"
	case Unsupported:
		return "Unsupported"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case Oversize:
		return "Oversize"
	case InsufficientSpace:
		return "InsufficientSpace"
	default:
		return "Unknown"
	}
}

// Error is the core's single error type: a Kind plus an optional wrapped
// cause and a short contextual message.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err itself is a *Error of the given Kind. It does not
// unwrap: an *Error wrapped inside another error is not inspected.
func Is(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	if !ok {
		return false
	}
	return fe.Kind == kind
}

// Unsupported is a non-fatal sentinel a decoder returns to tell its caller
// "this shape doesn't match me, try the next candidate" — distinct from Err.
func IsUnsupported(err error) bool {
	return Is(err, Unsupported)
}
