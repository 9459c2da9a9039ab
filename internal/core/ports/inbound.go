package ports

import (
	"context"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

// DocumentCatalog is the inbound contract for document lifecycle operations.
type DocumentCatalog interface {
	Add(ctx context.Context, doc domain.NewDocument) (*domain.Document, error)
	Get(ctx context.Context, id string) (*domain.Document, error)
	Search(ctx context.Context, query string) ([]domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
}

// DocumentAnalyzer is the inbound contract for text and document analysis.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, documentID string) (*domain.DocumentAnalysis, error)
	Sentiment(ctx context.Context, text string) domain.Sentiment
	Keywords(ctx context.Context, text string, limit int) []domain.Keyword
	Readability(ctx context.Context, text string) domain.Readability
	Stats(ctx context.Context, text string) domain.TextStats
}
