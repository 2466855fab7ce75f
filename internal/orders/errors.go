package orders

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a request body that could not be parsed as JSON.
// Maps to a client fault (400).
var ErrMalformedInput = errors.New("malformed order payload")

// ValidationError carries the message of the first validation rule an order
// failed. Maps to a client fault (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DependencyError indicates an external collaborator (queue, store, mailer)
// was unavailable or timed out. Maps to a server fault (500); the detail is
// for operator logs only and never reaches the client.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
