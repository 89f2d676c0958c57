// Copyright (c) 2025 A Bit of Help, Inc.

package context

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestWithTimeout(t *testing.T) {
	ctx := context.Background()
	timeout := 100 * time.Millisecond

	timeoutCtx, cancel := WithTimeout(ctx, timeout, ContextOptions{})
	defer cancel()

	deadline, ok := timeoutCtx.Deadline()
	if !ok {
		t.Error("Expected deadline to be set")
	}

	expectedDeadline := time.Now().Add(timeout)
	if deadline.Sub(expectedDeadline) > 10*time.Millisecond {
		t.Errorf("Deadline not set correctly, got %v, expected approximately %v", deadline, expectedDeadline)
	}
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()

	if requestID := GetRequestID(ctx); requestID != "" {
		t.Errorf("Expected empty request ID, got %v", requestID)
	}

	ctx = WithRequestID(ctx)

	if requestID := GetRequestID(ctx); requestID == "" {
		t.Error("Expected non-empty request ID")
	}
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()

	if traceID := GetTraceID(ctx); traceID != "" {
		t.Errorf("Expected empty trace ID, got %v", traceID)
	}

	ctx = WithTraceID(ctx)

	if traceID := GetTraceID(ctx); traceID == "" {
		t.Error("Expected non-empty trace ID")
	}
}

func TestWithOperation(t *testing.T) {
	ctx := context.Background()

	if operation := GetOperation(ctx); operation != "" {
		t.Errorf("Expected empty operation, got %v", operation)
	}

	expectedOperation := "batch-parse"
	ctx = WithOperation(ctx, expectedOperation)

	if operation := GetOperation(ctx); operation != expectedOperation {
		t.Errorf("Expected operation %v, got %v", expectedOperation, operation)
	}
}

func TestWithCorrelationID(t *testing.T) {
	ctx := context.Background()

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		t.Errorf("Expected empty correlation ID, got %v", correlationID)
	}

	expectedCorrelationID := "corr123"
	ctx = WithCorrelationID(ctx, expectedCorrelationID)

	if correlationID := GetCorrelationID(ctx); correlationID != expectedCorrelationID {
		t.Errorf("Expected correlation ID %v, got %v", expectedCorrelationID, correlationID)
	}
}

func TestNewContext(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		opts := ContextOptions{
			Timeout:       100 * time.Millisecond,
			RequestID:     "req123",
			TraceID:       "trace456",
			Operation:     "batch-parse",
			CorrelationID: "corr345",
		}

		ctx, cancel := NewContext(opts)
		defer cancel()

		if ctx == nil {
			t.Fatal("Expected non-nil context")
		}

		if _, ok := ctx.Deadline(); !ok {
			t.Error("Expected deadline to be set")
		}
		if GetRequestID(ctx) != opts.RequestID {
			t.Errorf("Expected request ID %v, got %v", opts.RequestID, GetRequestID(ctx))
		}
		if GetTraceID(ctx) != opts.TraceID {
			t.Errorf("Expected trace ID %v, got %v", opts.TraceID, GetTraceID(ctx))
		}
		if GetOperation(ctx) != opts.Operation {
			t.Errorf("Expected operation %v, got %v", opts.Operation, GetOperation(ctx))
		}
		if GetCorrelationID(ctx) != opts.CorrelationID {
			t.Errorf("Expected correlation ID %v, got %v", opts.CorrelationID, GetCorrelationID(ctx))
		}
	})

	t.Run("without timeout generates IDs", func(t *testing.T) {
		ctx, cancel := NewContext(ContextOptions{})
		defer cancel()

		if _, ok := ctx.Deadline(); ok {
			t.Error("Expected no deadline to be set")
		}
		if GetRequestID(ctx) == "" {
			t.Error("Expected a generated request ID")
		}
		if GetCorrelationID(ctx) == "" {
			t.Error("Expected a generated correlation ID")
		}
	})
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	ctx = WithRequestID(ctx)
	ctx = WithTraceID(ctx)
	ctx = WithOperation(ctx, "batch-parse")
	ctx = WithCorrelationID(ctx, "corr789")

	info := Info(ctx)

	for _, want := range []string{"RequestID:", "TraceID:", "CorrelationID: corr789", "Operation: batch-parse"} {
		if !strings.Contains(info, want) {
			t.Errorf("expected info %q to contain %q", info, want)
		}
	}
}
