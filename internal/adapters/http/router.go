package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/kirillkom/document-analyzer/internal/config"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
	"github.com/kirillkom/document-analyzer/internal/observability/metrics"
)

type Router struct {
	cfg      config.Config
	catalog  ports.DocumentCatalog
	analyzer ports.DocumentAnalyzer

	metrics *metrics.ServerMetrics
	mcp     http.Handler
	logger  *slog.Logger
}

type RouterOption func(*Router)

// WithMetrics exposes /metrics and records request metrics.
func WithMetrics(m *metrics.ServerMetrics) RouterOption {
	return func(rt *Router) { rt.metrics = m }
}

// WithMCPHandler mounts the streamable MCP transport at the configured path.
func WithMCPHandler(h http.Handler) RouterOption {
	return func(rt *Router) { rt.mcp = h }
}

func WithLogger(logger *slog.Logger) RouterOption {
	return func(rt *Router) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

func NewRouter(
	cfg config.Config,
	catalog ports.DocumentCatalog,
	analyzer ports.DocumentAnalyzer,
	opts ...RouterOption,
) *Router {
	rt := &Router{
		cfg:      cfg,
		catalog:  catalog,
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Router) Handler() (http.Handler, error) {
	contract, err := loadOpenAPIRouter()
	if err != nil {
		return nil, err
	}
	limit := rateLimitMiddleware(rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Use(routeTemplateMiddleware)

	r.HandleFunc("/healthz", rt.healthz).Methods(http.MethodGet)
	r.HandleFunc("/openapi.yaml", serveOpenAPI).Methods(http.MethodGet)
	if rt.metrics != nil {
		r.Handle("/metrics", rt.metrics.Handler()).Methods(http.MethodGet)
	}
	mcpPath := rt.cfg.MCPEndpointPath
	if mcpPath == "" {
		mcpPath = "/mcp"
	}
	if rt.mcp != nil {
		r.Handle(mcpPath, limit(streamingMiddleware(rt.mcp)))
	}

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(limit, validationMiddleware(contract))
	api.HandleFunc("/documents", rt.listDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents", rt.addDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents/{document_id}", rt.getDocument).Methods(http.MethodGet)
	api.HandleFunc("/documents/{document_id}/analysis", rt.analyzeDocument).Methods(http.MethodGet)
	api.HandleFunc("/analysis/sentiment", rt.analyzeSentiment).Methods(http.MethodPost)
	api.HandleFunc("/analysis/keywords", rt.extractKeywords).Methods(http.MethodPost)
	api.HandleFunc("/analysis/readability", rt.analyzeReadability).Methods(http.MethodPost)
	api.HandleFunc("/analysis/stats", rt.analyzeStats).Methods(http.MethodPost)

	gated := backpressureMiddleware(r, rt.cfg.APIMaxInFlight, time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond)
	// MCP listener streams live as long as the client session, so they must
	// not occupy in-flight slots.
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if rt.mcp != nil && req.URL.Path == mcpPath {
			r.ServeHTTP(w, req)
			return
		}
		gated.ServeHTTP(w, req)
	})
	handler = cors.New(cors.Options{
		AllowedOrigins: rt.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Authorization", requestIDHeader, "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{requestIDHeader, "Mcp-Session-Id", "Retry-After"},
	}).Handler(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(handler)
	}
	handler = accessLogMiddleware(rt.logger)(handler)
	handler = requestIDMiddleware(handler)
	return handler, nil
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPISpec)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (rt *Router) writeDomainError(w http.ResponseWriter, r *http.Request, err error, documentID string) {
	status := mapErrorToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		rt.logger.Error("http_handler_failed",
			"request_id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, status, errorMessage(err, documentID))
}

func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
