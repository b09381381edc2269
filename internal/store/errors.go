package store

import (
	"errors"
	"fmt"
)

// The closed set of store error tags. Every error returned by a store
// implementation either wraps one of these or is an unexpected failure.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when the store rejects a value because it
	// cannot be represented in the column type (e.g. text for an integer).
	ErrInvalidInput = errors.New("invalid input")

	// ErrReferenceMissing is returned when a write references a row that does
	// not exist (foreign key violation).
	ErrReferenceMissing = errors.New("referenced entity does not exist")

	// ErrDuplicate is returned when a write would duplicate a unique key.
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTopicNotFound indicates that a topic filter names an unknown topic.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrNothingDeleted indicates that a delete matched no rows.
	ErrNothingDeleted = fmt.Errorf("%w: nothing deleted", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError adds entity and operation context to a store failure.
type StoreError struct {
	Entity    string // The entity type (e.g., "article", "comment")
	Operation string // The operation that failed (e.g., "list", "update_votes")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
