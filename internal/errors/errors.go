// Package errors provides sentinel errors and custom error types for treedrag.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNodeNotFound indicates that a row id does not exist in the tree
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateID indicates that two rows in a tree share an id
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrEmptyID indicates a row without an id
	ErrEmptyID = errors.New("node id is empty")

	// ErrInvalidIntent indicates text that does not name a drop intent
	ErrInvalidIntent = errors.New("invalid drop intent")

	// ErrInvalidDocument indicates a row document that cannot be parsed
	ErrInvalidDocument = errors.New("invalid row document")

	// ErrInvalidConfig indicates a configuration value outside its domain
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidEvent indicates a replay event that cannot be dispatched
	ErrInvalidEvent = errors.New("invalid drag event")

	// ErrInteractiveDisabled is returned when interactive prompts are disabled via TREEDRAG_TEST_NO_INTERACTIVE
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled (TREEDRAG_TEST_NO_INTERACTIVE is set)")
)

// Is reports whether any error in err's tree matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// NodeNotFoundError represents an error when a row id is not in the tree
type NodeNotFoundError struct {
	ID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q does not exist", e.ID)
}

// Is returns true if the target error is ErrNodeNotFound
func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NewNodeNotFoundError creates a new NodeNotFoundError
func NewNodeNotFoundError(id string) *NodeNotFoundError {
	return &NodeNotFoundError{ID: id}
}

// DuplicateIDError represents a tree in which an id appears more than once
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("node id %q appears more than once", e.ID)
}

// Is returns true if the target error is ErrDuplicateID
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NewDuplicateIDError creates a new DuplicateIDError
func NewDuplicateIDError(id string) *DuplicateIDError {
	return &DuplicateIDError{ID: id}
}

// InvalidIntentError represents text that could not be parsed as an intent
type InvalidIntentError struct {
	Value string
}

func (e *InvalidIntentError) Error() string {
	return fmt.Sprintf("invalid drop intent %q (want above, over or below)", e.Value)
}

// Is returns true if the target error is ErrInvalidIntent
func (e *InvalidIntentError) Is(target error) bool {
	return target == ErrInvalidIntent
}

// NewInvalidIntentError creates a new InvalidIntentError
func NewInvalidIntentError(value string) *InvalidIntentError {
	return &InvalidIntentError{Value: value}
}

// DocumentError represents a failure to read or parse a row document
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid row document: %v", e.Err)
	}
	return fmt.Sprintf("invalid row document %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrInvalidDocument
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError
func NewDocumentError(path string, err error) *DocumentError {
	return &DocumentError{
		Path: path,
		Err:  err,
	}
}
