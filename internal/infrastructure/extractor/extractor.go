// Package extractor picks a text extractor for an import source by file
// extension.
package extractor

import (
	"context"
	"fmt"
	"io"

	"github.com/kirillkom/document-analyzer/internal/core/ports"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/extractor/pdf"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/extractor/plaintext"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/extractor/xlsx"
)

type Registry struct {
	extractors []ports.TextExtractor
}

func NewRegistry(extractors ...ports.TextExtractor) *Registry {
	return &Registry{extractors: extractors}
}

// NewDefaultRegistry handles .txt, .md, .pdf and .xlsx sources.
func NewDefaultRegistry() *Registry {
	return NewRegistry(plaintext.NewExtractor(), pdf.NewExtractor(), xlsx.NewExtractor())
}

func (r *Registry) Supports(key string) bool {
	return r.find(key) != nil
}

func (r *Registry) Extract(ctx context.Context, key string, body io.Reader) (string, error) {
	e := r.find(key)
	if e == nil {
		return "", fmt.Errorf("no extractor for %s", key)
	}
	return e.Extract(ctx, key, body)
}

func (r *Registry) find(key string) ports.TextExtractor {
	for _, e := range r.extractors {
		if e.Supports(key) {
			return e
		}
	}
	return nil
}
