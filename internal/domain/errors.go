package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks at the request boundary
var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("word already exists")
	ErrNotFound   = errors.New("word not found")
	ErrStorage    = errors.New("storage unavailable")
)

// ValidationError is returned when caller input fails a precondition
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateEntryError carries the entry that already holds the text.
// Existing may be nil if the entry vanished before it could be read back.
type DuplicateEntryError struct {
	Text     string
	Existing *Word
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("word %q already exists", e.Text)
}

func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicate
}

// NotFoundError is returned when no entry has the given id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("word with id %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a backing store failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// ErrTextRequired is the validation failure for missing or blank text
func ErrTextRequired() error {
	return &ValidationError{Field: "text", Message: "text is required"}
}
