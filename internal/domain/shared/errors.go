package shared

import (
	"fmt"
	"sort"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so that errors.Is works
// for errors built with a custom message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidPage      = "INVALID_PAGE"
	CodeConflict         = "CONFLICT"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidState     = "INVALID_STATE"
)

// Common domain errors
var (
	ErrNotFound         = NewDomainError(CodeNotFound, "Not found.")
	ErrInvalidPage      = NewDomainError(CodeInvalidPage, "Invalid page.")
	ErrConflict         = NewDomainError(CodeConflict, "Resource conflicts with existing data.")
	ErrMethodNotAllowed = NewDomainError(CodeMethodNotAllowed, "Method not allowed.")
	ErrInvalidState     = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)

// NewNotFoundError returns a not-found error with a specific message.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewConflictError returns a conflict error with a specific message.
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewMethodNotAllowedError names the rejected method.
func NewMethodNotAllowedError(method string) *DomainError {
	return NewDomainError(CodeMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", method))
}

// NonFieldErrors is the key for validation messages not bound to one field.
const NonFieldErrors = "non_field_errors"

// ValidationError collects messages per field.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// FieldError is a shorthand for a single-message validation error.
func FieldError(field, message string) *ValidationError {
	v := NewValidationError()
	v.Add(field, message)
	return v
}

// Add appends a message for a field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Has reports whether the field already carries an error.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// Empty reports whether no error was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// OrNil returns nil when no error was recorded, so callers can write `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
