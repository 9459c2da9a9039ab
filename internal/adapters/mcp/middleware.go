package mcpadapter

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	statusOK        = "ok"
	statusToolError = "tool_error"
	statusError     = "error"
)

func (s *Server) observe(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tool := req.Params.Name
		ctx, span := s.tracer.Start(ctx, "mcp.tool "+tool,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool.name", tool)),
		)
		defer span.End()

		start := time.Now()
		res, err := next(ctx, req)
		elapsed := time.Since(start)

		status := statusOK
		switch {
		case err != nil:
			status = statusError
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case res != nil && res.IsError:
			status = statusToolError
			span.SetStatus(codes.Error, "tool returned an error result")
		}
		span.SetAttributes(attribute.String("mcp.tool.status", status))
		s.recorder.RecordToolCall(tool, status, elapsed)

		attrs := []any{
			"tool", tool,
			"status", status,
			"duration_ms", float64(elapsed.Microseconds()) / 1000.0,
		}
		if err != nil {
			s.logger.Error("mcp_tool_call", append(attrs, "error", err)...)
		} else {
			s.logger.Info("mcp_tool_call", attrs...)
		}
		return res, err
	}
}
