// Copyright (c) 2025 A Bit of Help, Inc.

package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParseErrorMessageAndKind(t *testing.T) {
	err := NewParseError(TooLong, "national significant number is too long")

	assert.Contains(t, err.Error(), "too long")
	assert.Equal(t, TooLong, err.Kind)
}

func TestIsKind(t *testing.T) {
	err := NewParseError(NotANumber, "input does not contain a viable phone number")

	assert.True(t, IsKind(err, NotANumber))
	assert.False(t, IsKind(err, TooLong))
	assert.False(t, IsKind(stderrors.New("plain error"), NotANumber))
}

func TestParseErrorIsMatchesOnKindOnly(t *testing.T) {
	a := NewParseError(TooShortNSN, "first message")
	b := NewParseError(TooShortNSN, "second message")
	c := NewParseError(TooLong, "second message")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}
