package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/analysis"
	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

// ProcessObserver receives worker telemetry. *metrics.WorkerMetrics
// satisfies it.
type ProcessObserver interface {
	StartAnalysis()
	FinishAnalysis(service string, duration time.Duration, err error)
	ObserveEventLag(service string, lag time.Duration)
}

// ProcessDocumentUseCase analyzes documents announced by the catalog. The
// event carries the whole record, so no store lookup is needed.
type ProcessDocumentUseCase struct {
	service      string
	keywordLimit int
	observer     ProcessObserver
	logger       *slog.Logger
	now          func() time.Time
}

func NewProcessDocumentUseCase(service string, keywordLimit int, observer ProcessObserver, logger *slog.Logger) *ProcessDocumentUseCase {
	if keywordLimit <= 0 {
		keywordLimit = analysis.DefaultKeywordLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessDocumentUseCase{
		service:      service,
		keywordLimit: keywordLimit,
		observer:     observer,
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *ProcessDocumentUseCase) Process(ctx context.Context, doc domain.Document) (*domain.DocumentAnalysis, error) {
	start := uc.now()
	if uc.observer != nil {
		uc.observer.StartAnalysis()
		if !doc.CreatedAt.IsZero() {
			uc.observer.ObserveEventLag(uc.service, start.Sub(doc.CreatedAt))
		}
	}

	result, err := uc.analyze(ctx, doc)
	if uc.observer != nil {
		uc.observer.FinishAnalysis(uc.service, uc.now().Sub(start), err)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("document_analyzed",
		"document_id", doc.ID,
		"title", doc.Title,
		"sentiment", result.Sentiment.Sentiment,
		"confidence", result.Sentiment.Confidence,
		"words", result.Stats.WordCount,
		"difficulty", result.Readability.Difficulty,
		"top_keyword", topKeyword(result.Keywords),
	)
	return result, nil
}

func (uc *ProcessDocumentUseCase) analyze(ctx context.Context, doc domain.Document) (*domain.DocumentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analyze document %s: %w", doc.ID, err)
	}
	if doc.ID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze document", fmt.Errorf("missing document id"))
	}

	result := analyzeDocument(doc, uc.keywordLimit, uc.now())
	return &result, nil
}

func topKeyword(keywords []domain.Keyword) string {
	if len(keywords) == 0 {
		return ""
	}
	return keywords[0].Word
}
