// Package seed provides the sample documents every fresh store starts with.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

//go:embed documents.yaml
var documentsYAML []byte

type dataset struct {
	Documents []domain.NewDocument `yaml:"documents"`
}

// Documents returns the sample dataset in insertion order.
func Documents() ([]domain.NewDocument, error) {
	return Parse(documentsYAML)
}

func Parse(raw []byte) ([]domain.NewDocument, error) {
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode seed documents: %w", err)
	}
	out := make([]domain.NewDocument, 0, len(ds.Documents))
	for _, doc := range ds.Documents {
		out = append(out, doc.Normalized())
	}
	return out, nil
}

// Load adds the sample dataset through the regular store add path and
// returns the number of documents added.
func Load(ctx context.Context, store ports.DocumentStore) (int, error) {
	docs, err := Documents()
	if err != nil {
		return 0, err
	}
	for i, doc := range docs {
		if _, err := store.Add(ctx, doc); err != nil {
			return i, fmt.Errorf("add seed document %q: %w", doc.Title, err)
		}
	}
	return len(docs), nil
}
