// Copyright (c) 2025 A Bit of Help, Inc.

package errors

import (
	stderrors "errors"

	"github.com/abitofhelp/phonenumber/errors/core"
	"github.com/abitofhelp/phonenumber/errors/domain"
)

// Re-exported so callers only need to import this package.
type (
	// DomainError is a domain-specific error, e.g. from the config or
	// metadata loaders.
	DomainError = domain.DomainError

	// ValidationError reports a field-level validation failure.
	ValidationError = domain.ValidationError

	// ValidationErrors collects multiple ValidationError values, e.g. all
	// the struct-tag failures from validating a batch parse request.
	ValidationErrors = domain.ValidationErrors

	// ErrorCode categorizes an error for programmatic handling.
	ErrorCode = core.ErrorCode
)

var (
	// NewDomainError creates a new DomainError.
	NewDomainError = domain.NewDomainError

	// NewValidationError creates a new ValidationError.
	NewValidationError = domain.NewValidationError

	// NewValidationErrors creates a new ValidationErrors.
	NewValidationErrors = domain.NewValidationErrors
)

// Is is a re-export of the standard library's errors.Is, so callers that
// already import this package for ParseError don't need a second import
// for ordinary error chain checks.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As is a re-export of the standard library's errors.As.
func As(err error, target interface{}) bool { return stderrors.As(err, target) }

// Wrap attaches message as context to cause, preserving cause in the
// error chain.
func Wrap(cause error, message string) error {
	if cause == nil {
		return nil
	}
	return core.NewBaseError(core.InternalErrorCode, message, cause)
}
