// Package errors merges the stdlib error helpers with the stack-recording
// constructors of pkg/errors, so callers need a single import.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType finds the first error in err's chain assignable to T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap records a stack and prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf is fmt.Errorf with a recorded stack. %w is not supported.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// StackTrace prints err with every recorded frame, or just its message when
// nothing in the chain captured a stack.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
