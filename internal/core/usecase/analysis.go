package usecase

import (
	"context"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/analysis"
	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

type AnalysisUseCase struct {
	store        ports.DocumentStore
	keywordLimit int
	now          func() time.Time
}

func NewAnalysisUseCase(store ports.DocumentStore, keywordLimit int) *AnalysisUseCase {
	if keywordLimit <= 0 {
		keywordLimit = analysis.DefaultKeywordLimit
	}
	return &AnalysisUseCase{
		store:        store,
		keywordLimit: keywordLimit,
		now:          time.Now,
	}
}

// WithClock replaces the timestamp source of document analyses.
func (uc *AnalysisUseCase) WithClock(now func() time.Time) *AnalysisUseCase {
	if now != nil {
		uc.now = now
	}
	return uc
}

func (uc *AnalysisUseCase) AnalyzeDocument(ctx context.Context, documentID string) (*domain.DocumentAnalysis, error) {
	doc, ok := uc.store.Get(ctx, documentID)
	if !ok {
		return nil, domain.DocumentNotFound("analyze document", documentID)
	}

	result := analyzeDocument(doc, uc.keywordLimit, uc.now())
	return &result, nil
}

func analyzeDocument(doc domain.Document, keywordLimit int, at time.Time) domain.DocumentAnalysis {
	text := doc.Content
	return domain.DocumentAnalysis{
		DocumentID:  doc.ID,
		Title:       doc.Title,
		Author:      doc.Author,
		Category:    doc.Category,
		Sentiment:   analysis.Sentiment(text),
		Keywords:    analysis.Keywords(text, keywordLimit),
		Readability: analysis.Readability(text),
		Stats:       analysis.Stats(text),
		Timestamp:   at,
	}
}

func (uc *AnalysisUseCase) Sentiment(_ context.Context, text string) domain.Sentiment {
	return analysis.Sentiment(text)
}

func (uc *AnalysisUseCase) Keywords(_ context.Context, text string, limit int) []domain.Keyword {
	return analysis.Keywords(text, limit)
}

func (uc *AnalysisUseCase) Readability(_ context.Context, text string) domain.Readability {
	return analysis.Readability(text)
}

func (uc *AnalysisUseCase) Stats(_ context.Context, text string) domain.TextStats {
	return analysis.Stats(text)
}
