package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel to err. The sentinel participates in the standard
// Unwrap chain, so errors.Is(err, sentinel) holds anywhere above while the
// cause chain (and its stack trace) stays intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

func (e *marked) Unwrap() error { return e.cause }

func (e *marked) Is(target error) bool { return errors.Is(e.mark, target) }
