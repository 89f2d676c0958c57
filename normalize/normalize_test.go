// Copyright (c) 2025 A Bit of Help, Inc.

package normalize_test

import (
	"testing"

	"github.com/abitofhelp/phonenumber/normalize"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"ascii digits pass through", "650-333-6000", "6503336000"},
		{"fullwidth digits", "６５０", "650"},
		{"arabic-indic digits", "٠١٢٣", "0123"},
		{"keypad letters upper", "1-800-FLOWERS", "18003569377"},
		{"keypad letters lower", "1-800-flowers", "18003569377"},
		{"drops unmapped punctuation", "(650) 333-6000!", "6503336000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Normalize(tt.in))
		})
	}
}

func TestNormalizeDigitsOnly(t *testing.T) {
	assert.Equal(t, "18003569377", normalize.NormalizeDigitsOnly("1-800-356-9377"))
	assert.Equal(t, "650", normalize.NormalizeDigitsOnly("(650) abc"))
}

func TestNormalizeIdempotence(t *testing.T) {
	for _, s := range []string{"650-333-6000", "６５０", "+1 (650) 333-6000 ext 123"} {
		once := normalize.Normalize(s)
		twice := normalize.Normalize(once)
		assert.Equal(t, once, twice)
	}
}

func TestIsViable(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected bool
	}{
		{"empty", "", false},
		{"plain number", "033316005", true},
		{"plus prefixed", "+64 3 331 6005", true},
		{"single digit too short", "5", false},
		{"letters only phrase", "I want a Pizza", false},
		{"starts mid-number garbage", "call me at 6503336000", false},
		{"parenthesized start", "(650) 333-6000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.IsViable(tt.in))
		})
	}
}

func TestExtractPossibleNumber(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", "033316005", "033316005"},
		{"leading text stripped", "Call me: +64 3 331 6005", "+64 3 331 6005"},
		{"trailing garbage truncated", "650-333-6000, the pizza place", "650-333-6000"},
		{"no start char", "hello world", ""},
		{"allows extension letters", "650-333-6000x1234", "650-333-6000x1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.ExtractPossibleNumber(tt.in))
		})
	}
}
