package strutils

import "fmt"

// Code identifies one condition of the closed error taxonomy.
type Code int

const (
	// CodeNullReference: a required sequence argument was nil.
	CodeNullReference Code = iota
	// CodeEmptyDelimiter: a split received an empty delimiter.
	CodeEmptyDelimiter
	// CodeInvalidRange: substring or copy bounds are inconsistent.
	CodeInvalidRange
	// CodeAllocationFailure: the arena or a registry could not grow.
	CodeAllocationFailure
)

// String returns the message associated with the code.
func (c Code) String() string {
	switch c {
	case CodeNullReference:
		return "null reference passed where a sequence is required"
	case CodeEmptyDelimiter:
		return "split attempt with empty delimiter"
	case CodeInvalidRange:
		return "invalid substring range"
	case CodeAllocationFailure:
		return "storage could not be allocated"
	default:
		return fmt.Sprintf("unknown error code %d", int(c))
	}
}

// IsValid reports whether c belongs to the taxonomy.
func (c Code) IsValid() bool {
	return c >= CodeNullReference && c <= CodeAllocationFailure
}

var (
	// ErrNullReference matches any *Error with CodeNullReference.
	ErrNullReference = &Error{Code: CodeNullReference}
	// ErrEmptyDelimiter matches any *Error with CodeEmptyDelimiter.
	ErrEmptyDelimiter = &Error{Code: CodeEmptyDelimiter}
	// ErrInvalidRange matches any *Error with CodeInvalidRange.
	ErrInvalidRange = &Error{Code: CodeInvalidRange}
	// ErrAllocationFailure matches any *Error with CodeAllocationFailure.
	ErrAllocationFailure = &Error{Code: CodeAllocationFailure}
)

// Error is the error returned (or raised, in panic mode) by every operation
// that fails.
//
// The underlying cause (if any) can be accessed via errors.Unwrap.
type Error struct {
	Code Code
	Op   string
	cause error
}

func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return "strutils: " + msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Must returns v, or panics with err if it is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
