// Copyright (c) 2025 A Bit of Help, Inc.

package core

import "fmt"

// ErrorCode represents a unique error code for categorizing errors.
type ErrorCode string

// Standard error codes used across the phone number kernel.
const (
	// NotANumberCode is used when the input text does not contain a viable
	// phone number candidate at all.
	NotANumberCode ErrorCode = "NOT_A_NUMBER"

	// InvalidCountryCodeCode is used when no calling code could be
	// determined or resolved for the input.
	InvalidCountryCodeCode ErrorCode = "INVALID_COUNTRY_CODE"

	// TooShortAfterIDDCode is used when stripping the international dialing
	// prefix leaves too few digits to be a national number.
	TooShortAfterIDDCode ErrorCode = "TOO_SHORT_AFTER_IDD"

	// TooShortNSNCode is used when the national significant number has
	// fewer than 2 digits.
	TooShortNSNCode ErrorCode = "TOO_SHORT_NSN"

	// TooLongCode is used when the raw input exceeds 250 characters or the
	// national significant number exceeds 16 digits.
	TooLongCode ErrorCode = "TOO_LONG"

	// ValidationErrorCode is used for struct-level validation failures,
	// e.g. a malformed batch parse request.
	ValidationErrorCode ErrorCode = "VALIDATION_ERROR"

	// InvalidInputCode is used for malformed caller input that is not
	// specific to phone number parsing (bad region code, nil store, etc).
	InvalidInputCode ErrorCode = "INVALID_INPUT"

	// InternalErrorCode is used for unexpected failures, such as a corrupt
	// metadata source.
	InternalErrorCode ErrorCode = "INTERNAL_ERROR"
)

// Standard errors usable throughout the module.
var (
	// ErrInvalidInput is returned when the input to a function is invalid.
	ErrInvalidInput = fmt.Errorf("invalid input")

	// ErrInternal is returned when an internal error occurs.
	ErrInternal = fmt.Errorf("internal error")
)
