package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePDF(t *testing.T, lines ...string) []byte {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		doc.AddPage()
		doc.Cell(40, 10, line)
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestExtractorReadsEveryPage(t *testing.T) {
	raw := samplePDF(t, "Hello World", "Second page")

	got, err := NewExtractor().Extract(context.Background(), "sample.pdf", bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Contains(t, got, "Hello World")
	assert.Contains(t, got, "Second page")
	assert.Less(t, strings.Index(got, "Hello World"), strings.Index(got, "Second page"))
}

func TestExtractorRejectsGarbage(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), "broken.pdf", strings.NewReader("not a pdf"))
	assert.Error(t, err)
}

func TestExtractorSupports(t *testing.T) {
	e := NewExtractor()
	assert.True(t, e.Supports("Paper.PDF"))
	assert.False(t, e.Supports("paper.txt"))
}
