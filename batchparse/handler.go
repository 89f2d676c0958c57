// Copyright (c) 2025 A Bit of Help, Inc.

package batchparse

import (
	gocontext "context"

	"github.com/abitofhelp/phonenumber"
	pnctx "github.com/abitofhelp/phonenumber/context"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/pn"
	"github.com/abitofhelp/phonenumber/stringutil"
	"go.uber.org/zap"
)

// Result is the outcome of running one Request through the parser.
type Result struct {
	Request Request
	Err     error

	Number        pn.PhoneNumber
	E164          string
	National      string
	International string
	Valid         bool
	Possible      bool
	Type          pn.Type
}

// Handler runs a batch of Requests against a single Parser, logging one
// structured line per request under the context's correlation ID. It
// depends on logging.Logger rather than the concrete *logging.ContextLogger
// so a caller can hand it any conforming implementation (a test double,
// for instance) without this package knowing about zap.
type Handler struct {
	parser *phonenumber.Parser
	logger logging.Logger
}

// NewHandler creates a Handler over parser, logging through logger.
func NewHandler(parser *phonenumber.Parser, logger logging.Logger) *Handler {
	return &Handler{parser: parser, logger: logger}
}

// HandleOne validates req, parses its raw number, and reports every derived
// property the CLI exerciser displays. A validation or parse failure is
// returned in Result.Err with only Result.Request otherwise set.
func (h *Handler) HandleOne(ctx gocontext.Context, req Request) Result {
	if err := req.Validate(); err != nil {
		h.logger.Warn(ctx, "batchparse: invalid request",
			zap.String("correlation_id", pnctx.GetCorrelationID(ctx)),
			zap.Error(err))
		return Result{Request: req, Err: err}
	}

	n, err := h.parser.ParseAndKeepRaw(req.RawNumber, req.Region)
	if err != nil {
		h.logger.Warn(ctx, "batchparse: parse failed",
			zap.String("correlation_id", pnctx.GetCorrelationID(ctx)),
			zap.String("region", req.Region),
			zap.Error(err))
		return Result{Request: req, Err: err}
	}
	if stringutil.IsNotEmpty(req.Extension) {
		n = n.WithExtension(req.Extension)
	}

	res := Result{
		Request:       req,
		Number:        n,
		E164:          h.parser.Format(n, pn.E164),
		National:      h.parser.Format(n, pn.NATIONAL),
		International: h.parser.Format(n, pn.INTERNATIONAL),
		Valid:         h.parser.IsValidNumber(n),
		Possible:      h.parser.IsPossibleNumber(n),
		Type:          h.parser.GetNumberType(n),
	}

	h.logger.Info(ctx, "batchparse: parsed",
		zap.String("correlation_id", pnctx.GetCorrelationID(ctx)),
		zap.String("e164", res.E164),
		zap.Bool("valid", res.Valid),
		zap.String("type", res.Type.String()))

	return res
}

// HandleBatch runs HandleOne over every request in order, returning one
// Result per Request.
func (h *Handler) HandleBatch(ctx gocontext.Context, reqs []Request) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, h.HandleOne(ctx, req))
	}
	return results
}
