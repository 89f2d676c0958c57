// Copyright (c) 2025 A Bit of Help, Inc.

package batchparse_test

import (
	"context"
	"testing"

	"github.com/abitofhelp/phonenumber"
	"github.com/abitofhelp/phonenumber/batchparse"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) *batchparse.Handler {
	t.Helper()
	store, err := metadata.Builtin()
	require.NoError(t, err)
	parser := phonenumber.NewParser(store)
	return batchparse.NewHandler(parser, logging.NewContextLogger(zap.NewNop()))
}

func TestHandleOneParsesValidNumber(t *testing.T) {
	h := newHandler(t)

	res := h.HandleOne(context.Background(), batchparse.Request{
		Region:    "NZ",
		RawNumber: "033316005",
	})

	require.NoError(t, res.Err)
	assert.Equal(t, "+6433316005", res.E164)
	assert.True(t, res.Valid)
	assert.True(t, res.Possible)
}

func TestHandleOneRejectsInvalidRequest(t *testing.T) {
	h := newHandler(t)

	res := h.HandleOne(context.Background(), batchparse.Request{Region: "NZL", RawNumber: "033316005"})
	require.Error(t, res.Err)
}

func TestHandleOneReportsParseError(t *testing.T) {
	h := newHandler(t)

	res := h.HandleOne(context.Background(), batchparse.Request{Region: "US", RawNumber: "I want a Pizza"})
	require.Error(t, res.Err)
}

func TestHandleBatchPreservesOrder(t *testing.T) {
	h := newHandler(t)

	reqs := []batchparse.Request{
		{Region: "NZ", RawNumber: "033316005"},
		{Region: "US", RawNumber: "650-253-0000"},
	}
	results := h.HandleBatch(context.Background(), reqs)

	require.Len(t, results, 2)
	assert.Equal(t, 64, results[0].Number.CountryCode)
	assert.Equal(t, 1, results[1].Number.CountryCode)
}

func TestRequestValidateRejectsMissingFields(t *testing.T) {
	err := batchparse.Request{}.Validate()
	require.Error(t, err)
}

func TestRequestValidateAcceptsWellFormedRequest(t *testing.T) {
	err := batchparse.Request{Region: "US", RawNumber: "6502530000"}.Validate()
	require.NoError(t, err)
}
