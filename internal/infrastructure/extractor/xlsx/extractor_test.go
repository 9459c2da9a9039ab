package xlsx

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExtractorFlattensSheets(t *testing.T) {
	book := excelize.NewFile()
	defer book.Close()

	require.NoError(t, book.SetSheetRow("Sheet1", "A1", &[]any{"Quarterly", "review"}))
	require.NoError(t, book.SetSheetRow("Sheet1", "A2", &[]any{"Revenue grew", 42}))
	_, err := book.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, book.SetCellValue("Notes", "B1", "Great team work."))

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)

	got, err := NewExtractor().Extract(context.Background(), "review.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, "Quarterly review\nRevenue grew 42\n\nGreat team work.", got)
}

func TestExtractorRejectsNonWorkbook(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), "fake.xlsx", strings.NewReader("plain"))
	assert.Error(t, err)
}
