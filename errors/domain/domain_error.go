// Copyright (c) 2025 A Bit of Help, Inc.

// Package domain provides domain-specific error types for the phone number
// kernel.
package domain

import (
	"github.com/abitofhelp/phonenumber/errors/core"
)

// DomainError represents a domain-specific error.
// It extends BaseError with domain-specific information.
type DomainError struct {
	*core.BaseError
}

// NewDomainError creates a new DomainError.
func NewDomainError(code core.ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		BaseError: core.NewBaseError(code, message, cause),
	}
}

// IsDomainError identifies this as a domain error.
func (e *DomainError) IsDomainError() bool {
	return true
}

// As implements the errors.As interface for DomainError.
func (e *DomainError) As(target interface{}) bool {
	if t, ok := target.(*DomainError); ok {
		*t = *e
		return true
	}
	return e.BaseError.As(target)
}

// ValidationError represents a validation error.
// It extends DomainError with field-specific information.
type ValidationError struct {
	*DomainError
	Field string `json:"field,omitempty"`
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, field string, cause error) *ValidationError {
	return &ValidationError{
		DomainError: NewDomainError(core.ValidationErrorCode, message, cause),
		Field:       field,
	}
}

// IsValidationError identifies this as a validation error.
func (e *ValidationError) IsValidationError() bool {
	return true
}

// As implements the errors.As interface for ValidationError.
func (e *ValidationError) As(target interface{}) bool {
	if t, ok := target.(*ValidationError); ok {
		*t = *e
		return true
	}
	if t, ok := target.(*DomainError); ok {
		*t = *e.DomainError
		return true
	}
	return e.DomainError.As(target)
}

// ValidationErrors represents multiple validation errors, e.g. from
// validating a batch parse request.
type ValidationErrors struct {
	*DomainError
	Errors []*ValidationError `json:"errors,omitempty"`
}

// NewValidationErrors creates a new ValidationErrors.
func NewValidationErrors(message string, errors ...*ValidationError) *ValidationErrors {
	return &ValidationErrors{
		DomainError: NewDomainError(core.ValidationErrorCode, message, nil),
		Errors:      errors,
	}
}

// AddError adds a validation error to the collection.
func (e *ValidationErrors) AddError(err *ValidationError) {
	e.Errors = append(e.Errors, err)
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// As implements the errors.As interface for ValidationErrors.
func (e *ValidationErrors) As(target interface{}) bool {
	if t, ok := target.(*ValidationErrors); ok {
		*t = *e
		return true
	}
	if t, ok := target.(*DomainError); ok {
		*t = *e.DomainError
		return true
	}
	return e.DomainError.As(target)
}
