package pkg

// Sentinel errors for clog and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrInvalidArgument is returned when a caller passes an argument that can
// never be valid, such as an empty logger name.
var ErrInvalidArgument = MakeErrorf("invalid argument")

// ErrMethodNotFound is returned when a capability is requested from a sink
// that does not provide it.
//
// This error should be wrapped with the name of the missing method.
var ErrMethodNotFound = MakeErrorf("method not found")

// ErrInvalidLevel is returned when a string does not name a severity
// recognized by the active level scheme.
var ErrInvalidLevel = MakeErrorf("invalid level")

// ErrStoreKind is returned when an unknown persistence backend is requested.
var ErrStoreKind = MakeErrorf("unknown store kind")

// ErrOpenStore is returned when a persistence backend cannot be opened.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrOpenStore = MakeErrorf("failed to open store")

// ErrNoIterator is returned when enumeration is requested from a store that
// cannot enumerate its keys.
var ErrNoIterator = MakeErrorf("store does not support iteration")

// ErrPersist is returned when a level change could not be confirmed in the
// store.
var ErrPersist = MakeErrorf("level not persisted")

// ErrWriteConfig is returned when the configuration file cannot be written.
var ErrWriteConfig = MakeErrorf("write configuration file")

// ErrFileExists is returned when refusing to overwrite an existing file.
var ErrFileExists = MakeErrorf("file exists (use --force to overwrite)")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
// The receiver is never modified.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
// The receiver is never modified.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether every error of target also appears in the receiver.
//
// Error is a slice and so cannot be compared with ==, which would otherwise
// keep sentinel chains from matching under [errors.Is].
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.ContainsFunc(e, func(have error) bool {
			return same(have, want)
		}) {
			return false
		}
	}

	return true
}

// same compares two leaf errors, treating nested chains as distinct.
func same(a, b error) bool {
	if _, nested := a.(Error); nested {
		return false
	}

	if _, nested := b.(Error); nested {
		return false
	}

	return a == b
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(Error); ok {
		// A chain is already flat; it contributes its elements, not itself.
		for _, wrapped := range e {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
