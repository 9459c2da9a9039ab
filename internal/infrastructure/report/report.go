// Package report renders a spreadsheet summarizing the analysis of every
// document in the catalog.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
)

const (
	SheetName          = "Documents"
	DefaultConcurrency = 4
	topKeywords        = 5
)

var header = []any{
	"ID", "Title", "Author", "Category", "Tags",
	"Words", "Sentences", "Paragraphs",
	"Sentiment", "Confidence",
	"Reading Ease", "Grade Level", "Difficulty",
	"Top Keywords",
}

type Generator struct {
	catalog     ports.DocumentCatalog
	analyzer    ports.DocumentAnalyzer
	concurrency int
}

func NewGenerator(catalog ports.DocumentCatalog, analyzer ports.DocumentAnalyzer, concurrency int) *Generator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Generator{catalog: catalog, analyzer: analyzer, concurrency: concurrency}
}

// Analyze runs the document analysis of every listed document, at most
// concurrency at a time. Results keep catalog order.
func (g *Generator) Analyze(ctx context.Context) ([]domain.DocumentAnalysis, error) {
	docs, err := g.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return g.analyzeAll(ctx, docs)
}

func (g *Generator) analyzeAll(ctx context.Context, docs []domain.Document) ([]domain.DocumentAnalysis, error) {
	results := make([]domain.DocumentAnalysis, len(docs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, doc := range docs {
		eg.Go(func() error {
			a, err := g.analyzer.AnalyzeDocument(egCtx, doc.ID)
			if err != nil {
				return fmt.Errorf("analyze document %s: %w", doc.ID, err)
			}
			results[i] = *a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Write analyzes the catalog and writes the workbook to w. It returns the
// number of document rows.
func (g *Generator) Write(ctx context.Context, w io.Writer) (int, error) {
	docs, err := g.catalog.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}
	analyses, err := g.analyzeAll(ctx, docs)
	if err != nil {
		return 0, err
	}
	tags := make(map[string][]string, len(docs))
	for _, d := range docs {
		tags[d.ID] = d.Tags
	}

	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", SheetName); err != nil {
		return 0, fmt.Errorf("name sheet: %w", err)
	}
	if err := book.SetSheetRow(SheetName, "A1", &header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	for i, a := range analyses {
		row := Row(a, tags[a.DocumentID])
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		if err := book.SetSheetRow(SheetName, cell, &row); err != nil {
			return 0, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := book.WriteTo(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	return len(analyses), nil
}

// Row flattens one analysis into spreadsheet cells in header order.
func Row(a domain.DocumentAnalysis, tags []string) []any {
	words := make([]string, 0, topKeywords)
	for i, k := range a.Keywords {
		if i == topKeywords {
			break
		}
		words = append(words, k.Word)
	}
	return []any{
		a.DocumentID,
		a.Title,
		domain.StringValue(a.Author),
		domain.StringValue(a.Category),
		strings.Join(tags, ", "),
		a.Stats.WordCount,
		a.Stats.SentenceCount,
		a.Stats.ParagraphCount,
		string(a.Sentiment.Sentiment),
		a.Sentiment.Confidence,
		a.Readability.FleschReadingEase,
		a.Readability.FleschGradeLevel,
		a.Readability.Difficulty,
		strings.Join(words, ", "),
	}
}
