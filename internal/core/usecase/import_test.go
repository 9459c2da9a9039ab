package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/repository/memory"
)

type sourcesFake struct {
	files   map[string]string
	order   []string
	listErr error
}

func (f *sourcesFake) List(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.order, nil
}

func (f *sourcesFake) Open(_ context.Context, key string) (io.ReadCloser, error) {
	body, ok := f.files[key]
	if !ok {
		return nil, errors.New("missing file")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

type extractorFake struct{}

func (extractorFake) Supports(key string) bool {
	return strings.HasSuffix(key, ".txt") || strings.HasSuffix(key, ".MD")
}

func (extractorFake) Extract(_ context.Context, key string, body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if string(raw) == "broken" {
		return "", errors.New("cannot extract " + key)
	}
	return string(raw), nil
}

func TestImportAllAddsSupportedFiles(t *testing.T) {
	store := memory.NewDocumentStore()
	catalog := NewDocumentUseCase(store, nil, nil)
	sources := &sourcesFake{
		files: map[string]string{
			"alpha.txt": "Alpha content.",
			"beta.MD":   "Beta content.",
			"bad.txt":   "broken",
			"image.png": "binary",
		},
		order: []string{"alpha.txt", "bad.txt", "beta.MD", "image.png"},
	}

	uc := NewImportUseCase(sources, extractorFake{}, catalog, nil)
	report, err := uc.ImportAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Imported) != 2 || report.Imported[0] != "1" || report.Imported[1] != "2" {
		t.Fatalf("unexpected imported ids: %v", report.Imported)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != "image.png" {
		t.Fatalf("unexpected skipped: %v", report.Skipped)
	}
	if _, ok := report.Failed["bad.txt"]; !ok || len(report.Failed) != 1 {
		t.Fatalf("expected bad.txt failure, got %v", report.Failed)
	}

	doc, ok := store.Get(context.Background(), "2")
	if !ok {
		t.Fatal("expected imported document 2")
	}
	if doc.Title != "beta" || doc.Content != "Beta content." {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if domain.StringValue(doc.Category) != ImportedCategory {
		t.Fatalf("expected imported category, got %v", doc.Category)
	}
	if len(doc.Tags) != 1 || doc.Tags[0] != "md" {
		t.Fatalf("expected md tag, got %v", doc.Tags)
	}
	if doc.Author != nil {
		t.Fatalf("expected nil author, got %v", *doc.Author)
	}
}

func TestImportAllFailsWhenListingFails(t *testing.T) {
	uc := NewImportUseCase(&sourcesFake{listErr: errors.New("no dir")}, extractorFake{}, NewDocumentUseCase(memory.NewDocumentStore(), nil, nil), nil)
	if _, err := uc.ImportAll(context.Background()); err == nil {
		t.Fatal("expected list error")
	}
}
