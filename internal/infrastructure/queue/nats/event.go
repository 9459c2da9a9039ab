package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

const eventTypeDocumentAdded = "document.added"

type documentAddedEvent struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Document   domain.Document `json:"document"`
}

func encodeDocumentAdded(doc domain.Document, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(documentAddedEvent{
		Type:       eventTypeDocumentAdded,
		OccurredAt: at.UTC(),
		Document:   doc,
	})
	if err != nil {
		return nil, fmt.Errorf("encode document event: %w", err)
	}
	return payload, nil
}

func decodeDocumentAdded(raw []byte) (documentAddedEvent, error) {
	var event documentAddedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return documentAddedEvent{}, fmt.Errorf("decode document event: %w", err)
	}
	if event.Type != eventTypeDocumentAdded {
		return documentAddedEvent{}, fmt.Errorf("decode document event: unexpected type %q", event.Type)
	}
	if event.Document.ID == "" {
		return documentAddedEvent{}, fmt.Errorf("decode document event: missing document id")
	}
	if event.Document.Tags == nil {
		event.Document.Tags = []string{}
	}
	return event, nil
}
