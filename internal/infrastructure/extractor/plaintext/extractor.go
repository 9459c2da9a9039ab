package plaintext

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Extractor reads UTF-8 text and Markdown files as-is.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Supports(key string) bool {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".txt", ".md", ".markdown":
		return true
	default:
		return false
	}
}

func (e *Extractor) Extract(_ context.Context, key string, body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", key)
	}
	return strings.TrimSpace(string(raw)), nil
}
