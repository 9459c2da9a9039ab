package metrics

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	toolCallsTotal   *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
	documentsStored  prometheus.GaugeFunc
	documentsAdded   prometheus.Counter
	analyzedWords    *prometheus.HistogramVec
	sentimentResults *prometheus.CounterVec
}

// NewServerMetrics registers server metrics. documentCount is sampled on
// every scrape for the stored-documents gauge; it may be nil.
func NewServerMetrics(service string, documentCount func() int) *ServerMetrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests processed.",
			ConstLabels: constLabels,
		},
		[]string{"method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		},
		[]string{"method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: constLabels,
		},
	)
	toolCallsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "mcp",
			Name:        "tool_calls_total",
			Help:        "Total MCP tool calls by tool and status.",
			ConstLabels: constLabels,
		},
		[]string{"tool", "status"},
	)
	toolDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "mcp",
			Name:        "tool_duration_seconds",
			Help:        "MCP tool call duration in seconds.",
			Buckets:     []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
			ConstLabels: constLabels,
		},
		[]string{"tool"},
	)
	if documentCount == nil {
		documentCount = func() int { return 0 }
	}
	documentsStored := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "store",
			Name:        "documents",
			Help:        "Number of documents held in the store.",
			ConstLabels: constLabels,
		},
		func() float64 { return float64(documentCount()) },
	)
	documentsAdded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "store",
			Name:        "documents_added_total",
			Help:        "Total documents added after startup seeding.",
			ConstLabels: constLabels,
		},
	)
	analyzedWords := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "analysis",
			Name:        "words",
			Help:        "Distribution of word counts of analyzed texts.",
			Buckets:     []float64{0, 10, 50, 100, 250, 500, 1000, 5000, 20000},
			ConstLabels: constLabels,
		},
		[]string{"operation"},
	)
	sentimentResults := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "docanalyzer",
			Subsystem:   "analysis",
			Name:        "sentiment_total",
			Help:        "Sentiment labels produced by analyses.",
			ConstLabels: constLabels,
		},
		[]string{"label"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		toolCallsTotal,
		toolDuration,
		documentsStored,
		documentsAdded,
		analyzedWords,
		sentimentResults,
	)

	return &ServerMetrics{
		registry:         registry,
		requestTotal:     requestTotal,
		requestDuration:  requestDuration,
		requestInFlight:  requestInFlight,
		toolCallsTotal:   toolCallsTotal,
		toolDuration:     toolDuration,
		documentsStored:  documentsStored,
		documentsAdded:   documentsAdded,
		analyzedWords:    analyzedWords,
		sentimentResults: sentimentResults,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// UnmatchedRoute labels requests that no route template claimed.
const UnmatchedRoute = "other"

type routeLabelKey struct{}

type routeLabel struct {
	template string
}

// SetRouteTemplate labels the request's metrics with the matched route
// template. It is a no-op outside Middleware.
func SetRouteTemplate(r *http.Request, template string) {
	if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok && template != "" {
		label.template = template
	}
}

// Middleware records request metrics labeled by route template, so the path
// label stays bounded no matter which URLs clients send.
func (m *ServerMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		label := &routeLabel{template: UnmatchedRoute}
		r = r.WithContext(context.WithValue(r.Context(), routeLabelKey{}, label))
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(r.Method, label.template, strconv.Itoa(recorder.statusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, label.template).Observe(time.Since(start).Seconds())
	})
}

func (m *ServerMetrics) RecordToolCall(tool, status string, duration time.Duration) {
	if tool == "" {
		tool = "unknown"
	}
	if status == "" {
		status = "unknown"
	}
	m.toolCallsTotal.WithLabelValues(tool, status).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

func (m *ServerMetrics) RecordDocumentAdded() {
	m.documentsAdded.Inc()
}

// RecordAnalysis counts an analysis result. A negative word count means the
// operation did not measure words.
func (m *ServerMetrics) RecordAnalysis(operation string, words int, sentiment string) {
	if operation == "" {
		operation = "unknown"
	}
	if words >= 0 {
		m.analyzedWords.WithLabelValues(operation).Observe(float64(words))
	}
	if sentiment != "" {
		m.sentimentResults.WithLabelValues(sentiment).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}
