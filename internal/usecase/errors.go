package usecase

import "fmt"

// ValidationError is a field-level input problem. Handlers map a batch
// of these to a 422 with per-field detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// StoreError marks a backend failure that reached the caller, i.e. one
// with no fallback path left.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
