package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

type DocumentUseCase struct {
	store     ports.DocumentStore
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewDocumentUseCase(
	store ports.DocumentStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *DocumentUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentUseCase{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// Add stores the document and announces it. A failed announcement is logged
// but does not fail the add: the id is already allocated.
func (uc *DocumentUseCase) Add(ctx context.Context, in domain.NewDocument) (*domain.Document, error) {
	doc, err := uc.store.Add(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("add document: %w", err)
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishDocumentAdded(ctx, doc); err != nil {
			uc.logger.Warn("document_event_publish_failed",
				"document_id", doc.ID,
				"error", err,
			)
		}
	}
	return &doc, nil
}

func (uc *DocumentUseCase) Get(ctx context.Context, id string) (*domain.Document, error) {
	doc, ok := uc.store.Get(ctx, id)
	if !ok {
		return nil, domain.DocumentNotFound("get document", id)
	}
	return &doc, nil
}

func (uc *DocumentUseCase) Search(ctx context.Context, query string) ([]domain.Document, error) {
	return uc.store.Search(ctx, query), nil
}

func (uc *DocumentUseCase) List(ctx context.Context) ([]domain.Document, error) {
	return uc.store.List(ctx), nil
}
