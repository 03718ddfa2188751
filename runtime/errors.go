package runtime

import "github.com/pkg/errors"

// FatalError marks an invariant violation detected by the runtime: a bug
// in the runtime or its caller, as opposed to a missing rule, which is
// only a warning. Id exhaustion is reported separately, by id.Allocator's
// Next panicking.
type FatalError struct {
	cause error
}

func newFatal(format string, args ...interface{}) *FatalError {
	return &FatalError{cause: errors.Errorf(format, args...)}
}

func (e *FatalError) Error() string {
	return e.cause.Error()
}

func (e *FatalError) Unwrap() error {
	return e.cause
}
