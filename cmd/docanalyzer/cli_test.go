package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/report"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeText(t *testing.T) {
	out, err := run(t, "", "analyze", "--text", "I love this great product")
	require.NoError(t, err)

	var got domain.TextAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.SentimentPositive, got.Sentiment.Sentiment)
	assert.Equal(t, 5, got.Stats.WordCount)
}

func TestAnalyzeFileAndStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("Terrible. Awful service."), 0o644))

	out, err := run(t, "", "analyze", "--file", path)
	require.NoError(t, err)
	var fromFile domain.TextAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &fromFile))
	assert.Equal(t, domain.SentimentNegative, fromFile.Sentiment.Sentiment)
	assert.Equal(t, 2, fromFile.Stats.SentenceCount)

	out, err = run(t, "Terrible. Awful service.", "analyze")
	require.NoError(t, err)
	var fromStdin domain.TextAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &fromStdin))
	assert.Equal(t, fromFile, fromStdin)
}

func TestAnalyzeRejectsBothInputs(t *testing.T) {
	_, err := run(t, "", "analyze", "--file", "x.txt", "--text", "y")
	require.Error(t, err)
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := run(t, "", "analyze", "--file", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	_, err := run(t, "", "serve", "--transport", "carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport")
}

func TestReportWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.xlsx")
	out, err := run(t, "", "report", "--out", path, "--concurrency", "2")
	require.NoError(t, err)
	assert.Equal(t, "wrote 16 documents to "+path+"\n", out)

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(report.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 17)
	assert.Equal(t, "1", rows[1][0])
}

func TestReportRunsOfflineWithQueueConfigured(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memo.txt"), []byte("Quarterly memo."), 0o644))
	t.Setenv("NATS_URL", "nats://127.0.0.1:1")
	t.Setenv("IMPORT_DIR", dir)

	path := filepath.Join(t.TempDir(), "corpus.xlsx")
	out, err := run(t, "", "report", "--out", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote 17 documents to "+path+"\n", out)
}
