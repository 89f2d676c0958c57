// Copyright (c) 2025 A Bit of Help, Inc.

package kernellog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewBuildsLogger(t *testing.T) {
	logger, err := New("debug", true)
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestMetadataLoaded(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	MetadataLoaded(logger, 6, "builtin")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "metadata loaded", logs[0].Message)
	assert.EqualValues(t, 6, logs[0].ContextMap()["region_count"])
	assert.Equal(t, "builtin", logs[0].ContextMap()["source"])
}

func TestMetadataLoadFailed(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	MetadataLoadFailed(logger, "testdata.yaml", errors.New("boom"))

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, zapcore.ErrorLevel, logs[0].Level)
}

func TestCacheWarmed(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	CacheWarmed(logger, []string{"US", "NZ"}, 4)

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.EqualValues(t, 4, logs[0].ContextMap()["pattern_count"])
}
