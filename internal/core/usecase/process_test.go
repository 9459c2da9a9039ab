package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

type observerFake struct {
	started  int
	finished int
	failed   int
	lags     []time.Duration
}

func (f *observerFake) StartAnalysis() { f.started++ }

func (f *observerFake) FinishAnalysis(_ string, _ time.Duration, err error) {
	f.finished++
	if err != nil {
		f.failed++
	}
}

func (f *observerFake) ObserveEventLag(_ string, lag time.Duration) { f.lags = append(f.lags, lag) }

func TestProcessAnalyzesEventDocument(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := &observerFake{}
	uc := NewProcessDocumentUseCase("worker", 0, obs, nil)
	uc.now = func() time.Time { return created.Add(2 * time.Second) }

	got, err := uc.Process(context.Background(), domain.Document{
		ID:        "17",
		Title:     "Feedback",
		Content:   "The support team was wonderful and helpful.",
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DocumentID != "17" || got.Sentiment.Sentiment != domain.SentimentPositive {
		t.Fatalf("unexpected analysis: %+v", got)
	}
	if obs.started != 1 || obs.finished != 1 || obs.failed != 0 {
		t.Fatalf("unexpected observer counts: %+v", obs)
	}
	if len(obs.lags) != 1 || obs.lags[0] != 2*time.Second {
		t.Fatalf("expected 2s lag, got %v", obs.lags)
	}
}

func TestProcessRejectsDocumentWithoutID(t *testing.T) {
	obs := &observerFake{}
	uc := NewProcessDocumentUseCase("worker", 0, obs, nil)

	_, err := uc.Process(context.Background(), domain.Document{Content: "text"})
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if obs.failed != 1 {
		t.Fatalf("expected failure to be observed, got %+v", obs)
	}
	if len(obs.lags) != 0 {
		t.Fatalf("expected no lag for zero created_at, got %v", obs.lags)
	}
}

func TestProcessHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProcessDocumentUseCase("worker", 0, nil, nil).Process(ctx, domain.Document{ID: "1"}); err == nil {
		t.Fatal("expected context error")
	}
}
