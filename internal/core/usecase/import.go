package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

const ImportedCategory = "imported"

type ImportReport struct {
	Imported []string
	Skipped  []string
	Failed   map[string]error
}

// ImportUseCase turns files of a source directory into catalog documents.
type ImportUseCase struct {
	sources   ports.SourceStorage
	extractor ports.TextExtractor
	catalog   ports.DocumentCatalog
	logger    *slog.Logger
}

func NewImportUseCase(
	sources ports.SourceStorage,
	extractor ports.TextExtractor,
	catalog ports.DocumentCatalog,
	logger *slog.Logger,
) *ImportUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportUseCase{
		sources:   sources,
		extractor: extractor,
		catalog:   catalog,
		logger:    logger,
	}
}

// ImportAll adds every supported source in listing order. A file that cannot
// be read or extracted is reported and does not stop the import.
func (uc *ImportUseCase) ImportAll(ctx context.Context) (ImportReport, error) {
	keys, err := uc.sources.List(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("list import sources: %w", err)
	}

	report := ImportReport{Failed: map[string]error{}}
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !uc.extractor.Supports(key) {
			report.Skipped = append(report.Skipped, key)
			continue
		}

		doc, err := uc.importOne(ctx, key)
		if err != nil {
			report.Failed[key] = err
			uc.logger.Warn("document_import_failed", "source", key, "error", err)
			continue
		}
		report.Imported = append(report.Imported, doc.ID)
		uc.logger.Info("document_imported", "source", key, "document_id", doc.ID)
	}
	return report, nil
}

func (uc *ImportUseCase) importOne(ctx context.Context, key string) (*domain.Document, error) {
	body, err := uc.sources.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	text, err := uc.extractor.Extract(ctx, key, body)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(key)
	tags := []string{}
	if tag := strings.ToLower(strings.TrimPrefix(ext, ".")); tag != "" {
		tags = append(tags, tag)
	}

	return uc.catalog.Add(ctx, domain.NewDocument{
		Title:    strings.TrimSuffix(key, ext),
		Content:  text,
		Category: domain.StringPtr(ImportedCategory),
		Tags:     tags,
	})
}
