package errors

import "fmt"

// ErrValidation reports a rejected input field.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrCorruptAggregate reports a persisted financial aggregate that could not
// be decoded. This is fatal for the affected user; the blob is never silently
// regenerated.
type ErrCorruptAggregate struct {
	UserID string
	Err    error
}

func (e *ErrCorruptAggregate) Error() string {
	return fmt.Sprintf("corrupt financial data for user %s: %v", e.UserID, e.Err)
}

func (e *ErrCorruptAggregate) Unwrap() error {
	return e.Err
}
