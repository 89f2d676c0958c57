// Copyright (c) 2025 A Bit of Help, Inc.

// Package batchparse implements the request/response shapes and handler for
// the phone number CLI exerciser's batch-parse operation: given a region
// code and a raw number string for each line of input, parse, validate, and
// format every one and report the outcome. Struct-tag validation on Request
// uses github.com/go-playground/validator/v10, the same validator.New()
// call the teacher's dependency-injection container wires up for its own
// request DTOs.
package batchparse
