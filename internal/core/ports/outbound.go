package ports

import (
	"context"
	"io"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

// DocumentStore keeps document records. Get reports absence with false.
type DocumentStore interface {
	Add(ctx context.Context, doc domain.NewDocument) (domain.Document, error)
	Get(ctx context.Context, id string) (domain.Document, bool)
	Search(ctx context.Context, query string) []domain.Document
	List(ctx context.Context) []domain.Document
	Len() int
}

// EventPublisher announces document lifecycle events to other processes.
type EventPublisher interface {
	PublishDocumentAdded(ctx context.Context, doc domain.Document) error
}

// EventSubscriber consumes document lifecycle events.
type EventSubscriber interface {
	SubscribeDocumentAdded(ctx context.Context, handler func(context.Context, domain.Document) error) error
}

// SourceStorage lists and opens importable source files.
type SourceStorage interface {
	List(ctx context.Context) ([]string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// TextExtractor extracts plain text from a source file.
type TextExtractor interface {
	Supports(key string) bool
	Extract(ctx context.Context, key string, body io.Reader) (string, error)
}
