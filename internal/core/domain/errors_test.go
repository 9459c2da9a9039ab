package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestDocumentNotFoundKeepsKindAndID(t *testing.T) {
	err := DocumentNotFound("get document", "42")
	if !IsKind(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound kind, got %v", err)
	}
	if IsKind(err, ErrInvalidInput) {
		t.Fatalf("unexpected ErrInvalidInput kind in %v", err)
	}
	if !strings.HasPrefix(err.Error(), "get document: ") || !strings.Contains(err.Error(), "id=42") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := WrapError(ErrTemporary, "publish", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	wrapped := WrapError(ErrTemporary, "publish", errors.New("timeout"))
	if !errors.Is(wrapped, ErrTemporary) {
		t.Fatalf("expected ErrTemporary in %v", wrapped)
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := NotFoundMessage("999"); got != "Document with ID 999 not found" {
		t.Fatalf("unexpected message %q", got)
	}
}
