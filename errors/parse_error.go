// Copyright (c) 2025 A Bit of Help, Inc.

// Package errors provides the error types returned by the phone number
// kernel: a ParseError taxonomy for parse failures, plus the domain and
// validation error types used by the config, metadata, and batch-parse
// layers.
package errors

import (
	stderrors "errors"

	"github.com/abitofhelp/phonenumber/errors/core"
)

// Kind identifies why parsing a phone number failed.
type Kind string

const (
	// NotANumber means the input does not contain a viable phone number
	// candidate: too few digits, or no digits at all.
	NotANumber Kind = "NOT_A_NUMBER"

	// InvalidCountryCode means no calling code could be resolved, either
	// because none was present and no default region was given, or because
	// the digits following a '+' or IDD do not match any known country
	// calling code.
	InvalidCountryCode Kind = "INVALID_COUNTRY_CODE"

	// TooShortAfterIDD means stripping the international dialing prefix
	// left too few digits to plausibly be a national number.
	TooShortAfterIDD Kind = "TOO_SHORT_AFTER_IDD"

	// TooShortNSN means the national significant number has fewer than 2
	// digits.
	TooShortNSN Kind = "TOO_SHORT_NSN"

	// TooLong means the raw input is longer than 250 characters, or the
	// national significant number has more than 16 digits.
	TooLong Kind = "TOO_LONG"
)

func (k Kind) code() core.ErrorCode {
	switch k {
	case NotANumber:
		return core.NotANumberCode
	case InvalidCountryCode:
		return core.InvalidCountryCodeCode
	case TooShortAfterIDD:
		return core.TooShortAfterIDDCode
	case TooShortNSN:
		return core.TooShortNSNCode
	case TooLong:
		return core.TooLongCode
	default:
		return core.InvalidInputCode
	}
}

// ParseError reports why Parse could not produce a PhoneNumber.
type ParseError struct {
	*core.BaseError
	Kind Kind
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind Kind, message string) *ParseError {
	return &ParseError{
		BaseError: core.NewBaseError(kind.code(), message, nil),
		Kind:      kind,
	}
}

// Is reports whether target is a *ParseError of the same Kind, so callers
// can write errors.Is(err, errors.NewParseError(errors.TooLong, "")).
func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if stderrors.As(target, &pe) {
		return e.Kind == pe.Kind
	}
	return false
}

// IsKind reports whether err is a *ParseError with the given Kind.
func IsKind(err error, kind Kind) bool {
	var pe *ParseError
	if !stderrors.As(err, &pe) {
		return false
	}
	return pe.Kind == kind
}
