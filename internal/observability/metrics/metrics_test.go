package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestServerMetricsRecordsToolCalls(t *testing.T) {
	m := NewServerMetrics("test", func() int { return 16 })
	m.RecordToolCall("get_sentiment", "ok", 2*time.Millisecond)
	m.RecordToolCall("get_sentiment", "ok", time.Millisecond)
	m.RecordToolCall("", "", time.Millisecond)

	if got := testutil.ToFloat64(m.toolCallsTotal.WithLabelValues("get_sentiment", "ok")); got != 2 {
		t.Fatalf("expected 2 calls, got %v", got)
	}
	if got := testutil.ToFloat64(m.toolCallsTotal.WithLabelValues("unknown", "unknown")); got != 1 {
		t.Fatalf("expected unknown label fallback, got %v", got)
	}
	if got := testutil.ToFloat64(m.documentsStored); got != 16 {
		t.Fatalf("expected documents gauge 16, got %v", got)
	}
}

func TestServerMetricsMiddlewareLabelsByRouteTemplate(t *testing.T) {
	m := NewServerMetrics("test", nil)
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/documents/") {
			SetRouteTemplate(r, "/v1/documents/{document_id}")
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	for _, path := range []string{"/v1/documents/1", "/v1/documents/2", "/wp-admin", "/random/a/b"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, "/v1/documents/{document_id}", "404")); got != 2 {
		t.Fatalf("expected 2 templated requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")); got != 2 {
		t.Fatalf("expected 2 unmatched requests, got %v", got)
	}
	if got := testutil.CollectAndCount(m.requestTotal); got != 2 {
		t.Fatalf("expected 2 label sets, got %d", got)
	}

	res := httptest.NewRecorder()
	m.Handler().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(res.Body.String(), "docanalyzer_http_requests_total") {
		t.Fatalf("expected exposition to contain request counter")
	}
}

func TestWorkerMetricsTracksStatus(t *testing.T) {
	m := NewWorkerMetrics("worker")
	m.StartAnalysis()
	m.FinishAnalysis("worker", time.Millisecond, nil)
	m.StartAnalysis()
	m.FinishAnalysis("worker", time.Millisecond, errors.New("boom"))
	m.ObserveEventLag("worker", -time.Second)

	if got := testutil.ToFloat64(m.analysisTotal.WithLabelValues("worker", "error")); got != 1 {
		t.Fatalf("expected one failed analysis, got %v", got)
	}
	if got := testutil.ToFloat64(m.analysisInFlight); got != 0 {
		t.Fatalf("expected no in-flight analyses, got %v", got)
	}
}
