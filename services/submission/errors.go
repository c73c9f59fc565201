package submission

import "fmt"

// ValidationError carries per-field messages. The caller renders them; no
// collaborator was contacted.
type ValidationError struct {
	FieldErrors map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.FieldErrors))
}

// PaymentError means the payment handler declined or threw. The booking was
// not persisted; the user may retry with a different method.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}

// PersistenceError means the datastore write failed. Terminal for this
// submission attempt; the underlying cause is kept for logging.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
