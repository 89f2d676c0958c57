// Copyright (c) 2025 A Bit of Help, Inc.

// Package logging provides centralized logging functionality for services.
package logging

import (
	"github.com/abitofhelp/phonenumber/logging/interfaces"
)

// Logger is an alias for interfaces.Logger, so callers that only need the
// context-aware logging behavior (batchparse.Handler, for one) can depend
// on the interface instead of the concrete *ContextLogger.
type Logger = interfaces.Logger

// Ensure ContextLogger implements Logger interface
var _ Logger = (*ContextLogger)(nil)
