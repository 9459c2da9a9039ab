// Package mcpadapter exposes the catalog and the text analyzer as Model Context
// Protocol tools.
package mcpadapter

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

const (
	DefaultServerName    = "document-analyzer"
	DefaultServerVersion = "1.0.0"
	DefaultSnippetLength = 200

	instrumentationName = "github.com/kirillkom/document-analyzer/internal/adapters/mcp"
)

// Recorder receives per-call telemetry. *metrics.ServerMetrics satisfies it.
type Recorder interface {
	RecordToolCall(tool, status string, duration time.Duration)
	RecordDocumentAdded()
	RecordAnalysis(operation string, words int, sentiment string)
}

type Options struct {
	Name          string
	Version       string
	Logger        *slog.Logger
	Recorder      Recorder
	Tracer        trace.Tracer
	KeywordLimit  int
	SnippetLength int
}

type Server struct {
	mcp      *server.MCPServer
	catalog  ports.DocumentCatalog
	analyzer ports.DocumentAnalyzer

	logger        *slog.Logger
	recorder      Recorder
	tracer        trace.Tracer
	keywordLimit  int
	snippetLength int
}

func NewServer(catalog ports.DocumentCatalog, analyzer ports.DocumentAnalyzer, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = DefaultServerName
	}
	if opts.Version == "" {
		opts.Version = DefaultServerVersion
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer(instrumentationName)
	}
	if opts.KeywordLimit <= 0 {
		opts.KeywordLimit = 10
	}
	if opts.SnippetLength <= 0 {
		opts.SnippetLength = DefaultSnippetLength
	}

	s := &Server{
		catalog:       catalog,
		analyzer:      analyzer,
		logger:        opts.Logger,
		recorder:      opts.Recorder,
		tracer:        opts.Tracer,
		keywordLimit:  opts.KeywordLimit,
		snippetLength: opts.SnippetLength,
	}
	s.mcp = server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.observe),
		server.WithInstructions("Document analysis tools: sentiment, keywords, readability and statistics over a searchable document collection."),
	)
	s.registerTools()
	return s
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// HTTPHandler serves the streamable HTTP transport at endpointPath.
func (s *Server) HTTPHandler(endpointPath string) http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithEndpointPath(endpointPath))
}

// ServeStdio speaks the protocol over in/out until ctx is canceled or in is
// closed. Library diagnostics go to the structured logger, never to out.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(log.New(&logWriter{logger: s.logger}, "", 0))
	return stdio.Listen(ctx, in, out)
}

type logWriter struct {
	logger *slog.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logger.Warn("mcp_stdio", "message", string(trimNewline(p)))
	return len(p), nil
}

func trimNewline(p []byte) []byte {
	for len(p) > 0 && (p[len(p)-1] == '\n' || p[len(p)-1] == '\r') {
		p = p[:len(p)-1]
	}
	return p
}

type noopRecorder struct{}

func (noopRecorder) RecordToolCall(string, string, time.Duration) {}
func (noopRecorder) RecordDocumentAdded()                         {}
func (noopRecorder) RecordAnalysis(string, int, string)           {}
