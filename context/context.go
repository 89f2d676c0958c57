// Copyright (c) 2025 A Bit of Help, Inc.

// Package context provides request-scoped correlation for the phone number
// CLI/batch-parse exerciser: operation name, request ID, trace ID, and
// correlation ID attached to a context.Context so a batch of parses can be
// logged under one correlation line. The kernel packages themselves take no
// context — spec §5 requires no timeout or cancellation model for pure
// parse/format/match functions — so this package is used only above the
// kernel, by the CLI and batch-parse request handler.
package context

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Key represents a key for context values.
type Key string

// Context keys.
const (
	RequestIDKey     Key = "request_id"
	TraceIDKey       Key = "trace_id"
	OperationKey     Key = "operation"
	CorrelationIDKey Key = "correlation_id"
)

// DefaultTimeout is a 30-second timeout value for callers of NewContext or
// WithTimeout; nothing in this module applies it, and the kernel itself
// never blocks.
const DefaultTimeout = 30 * time.Second

// ContextOptions contains options for creating a context.
type ContextOptions struct {
	// Timeout is the duration after which the context will be canceled. A
	// zero value means no deadline.
	Timeout time.Duration

	// RequestID is a unique identifier for the request; generated if empty.
	RequestID string

	// TraceID is a unique identifier for tracing; generated if empty.
	TraceID string

	// Operation is the name of the operation being performed.
	Operation string

	// CorrelationID identifies a batch of related parses; generated if empty.
	CorrelationID string

	// Parent is the parent context; context.Background() if nil.
	Parent context.Context
}

// NewContext creates a new context enriched with the given options.
func NewContext(opts ContextOptions) (context.Context, context.CancelFunc) {
	if opts.Parent == nil {
		opts.Parent = context.Background()
	}

	if opts.Timeout > 0 {
		return WithTimeout(opts.Parent, opts.Timeout, opts)
	}

	ctx, cancel := context.WithCancel(opts.Parent)
	return enrichContext(ctx, opts), cancel
}

// WithTimeout creates a new context with the specified timeout and options.
func WithTimeout(ctx context.Context, timeout time.Duration, opts ContextOptions) (context.Context, context.CancelFunc) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	return enrichContext(timeoutCtx, opts), cancel
}

func enrichContext(ctx context.Context, opts ContextOptions) context.Context {
	if opts.RequestID != "" {
		ctx = context.WithValue(ctx, RequestIDKey, opts.RequestID)
	} else if GetRequestID(ctx) == "" {
		ctx = context.WithValue(ctx, RequestIDKey, uuid.New().String())
	}

	if opts.TraceID != "" {
		ctx = context.WithValue(ctx, TraceIDKey, opts.TraceID)
	} else if GetTraceID(ctx) == "" {
		ctx = context.WithValue(ctx, TraceIDKey, uuid.New().String())
	}

	if opts.Operation != "" {
		ctx = context.WithValue(ctx, OperationKey, opts.Operation)
	}

	if opts.CorrelationID != "" {
		ctx = context.WithValue(ctx, CorrelationIDKey, opts.CorrelationID)
	} else if GetCorrelationID(ctx) == "" {
		ctx = context.WithValue(ctx, CorrelationIDKey, uuid.New().String())
	}

	return ctx
}

// WithOperation attaches an operation name to ctx.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// GetOperation retrieves the operation name from ctx, or "" if unset.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(OperationKey).(string); ok {
		return op
	}
	return ""
}

// WithCorrelationID attaches a correlation ID to ctx.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

// GetCorrelationID retrieves the correlation ID from ctx, or "" if unset.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// WithRequestID attaches a freshly generated request ID to ctx.
func WithRequestID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RequestIDKey, uuid.New().String())
}

// GetRequestID retrieves the request ID from ctx, or "" if unset.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithTraceID attaches a freshly generated trace ID to ctx.
func WithTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.New().String())
}

// GetTraceID retrieves the trace ID from ctx, or "" if unset.
func GetTraceID(ctx context.Context) string {
	if id, ok := ctx.Value(TraceIDKey).(string); ok {
		return id
	}
	return ""
}

// Info returns a single-line summary of ctx's correlation fields, suitable
// for a structured log field.
func Info(ctx context.Context) string {
	info := fmt.Sprintf("RequestID: %s, TraceID: %s, CorrelationID: %s",
		GetRequestID(ctx), GetTraceID(ctx), GetCorrelationID(ctx))

	if operation := GetOperation(ctx); operation != "" {
		info += fmt.Sprintf(", Operation: %s", operation)
	}

	if deadline, ok := ctx.Deadline(); ok {
		info += fmt.Sprintf(", Deadline: %s", deadline.Format(time.RFC3339))
	}

	return info
}
