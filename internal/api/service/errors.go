package service

import "fmt"

// ValidationError rejects malformed or missing input before it reaches the
// store. Received and ValidValues are surfaced in the 400 body when set.
type ValidationError struct {
	Reason      string
	Received    any
	ValidValues []string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalidField(field string, received any) *ValidationError {
	return &ValidationError{Reason: "invalid " + field, Received: received}
}

// NotFoundError carries the requested id and the entity kind (or the
// request's type discriminator) for debuggability.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
