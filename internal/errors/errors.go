// Package errors joins the stdlib error helpers with pkg/errors so callers
// import a single package for wrapping and inspection.
package errors

import (
	stderrors "errors"

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

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause returns the innermost error of a pkg/errors chain.
//
//nolint:wrapcheck // Compatibility passthrough to preserve pkg/errors semantics.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
