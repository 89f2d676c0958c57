// Copyright (c) 2025 A Bit of Help, Inc.

package batchparse

import (
	"github.com/go-playground/validator/v10"

	kerrors "github.com/abitofhelp/phonenumber/errors"
)

// Request is one line of batch-parse input: a default region and a raw
// number string, with an optional extension override for callers that
// already split the extension out of the raw text.
type Request struct {
	Region    string `validate:"required,len=2"`
	RawNumber string `validate:"required"`
	Extension string `validate:"omitempty,max=7"`
}

// validate is shared by every Request; go-playground/validator/v10's own
// Validate type is safe for concurrent use once built, same as the
// teacher's di.Container wiring it once and handing it out by reference.
var validate = validator.New()

// Validate runs struct-tag validation on r and translates the first
// failing field into a *errors.ValidationError, or all of them into a
// *errors.ValidationErrors when more than one field fails.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return kerrors.Wrap(err, "batchparse: validate request")
	}

	var errs []*kerrors.ValidationError
	for _, fe := range fieldErrs {
		errs = append(errs, kerrors.NewValidationError(
			fe.Field()+" failed "+fe.Tag(), fe.Field(), nil))
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return kerrors.NewValidationErrors("batchparse: request failed validation", errs...)
}
