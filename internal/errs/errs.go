// Package errs defines the failure taxonomy of the content store.
package errs

import (
	"errors"
	"fmt"
)

// Kind is the condition a failed operation reports
type Kind int

const (
	// Internal is reported for errors that did not originate in the store
	Internal Kind = iota
	// Unauthorized: caller lacks the required capability or ownership
	Unauthorized
	// NotFound: a referenced post, comment, profile or like set is absent
	NotFound
	// Conflict: duplicate username, already liked, already following, not following
	Conflict
	// Invalid: the request can never succeed, e.g. following yourself
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "Unauthorized"
	case NotFound:
		return "NotFound"
	case Conflict:
		return "Conflict"
	case Invalid:
		return "Invalid"
	default:
		return "Internal"
	}
}

// Error is a rejected call carrying its condition and a reason string
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an error of the given kind
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or Internal if err is not a store error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err is a store error of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
