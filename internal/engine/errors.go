package engine

import (
	"fmt"
	"strings"
)

// ValidationError reports a task that failed structural rules. Nothing is
// persisted when this is returned.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	return "invalid task: " + strings.Join(e.Errors, "; ")
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// PersistenceError wraps a storage-boundary failure. In-memory state is
// unaffected; the caller may simply retry the operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

func errNotFound(id string) error { return NotFoundError{Kind: "task", ID: id} }

func errStore(op string, err error) error { return PersistenceError{Op: op, Err: err} }
