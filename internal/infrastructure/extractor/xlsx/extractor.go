package xlsx

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extractor flattens spreadsheets to text: cells of a row joined by a space,
// rows by a newline, sheets separated by a blank line.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Supports(key string) bool {
	return strings.EqualFold(filepath.Ext(key), ".xlsx")
}

func (e *Extractor) Extract(ctx context.Context, key string, body io.Reader) (string, error) {
	book, err := excelize.OpenReader(body)
	if err != nil {
		return "", fmt.Errorf("open workbook %s: %w", key, err)
	}
	defer book.Close()

	sheets := make([]string, 0, len(book.GetSheetList()))
	for _, sheet := range book.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		rows, err := book.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q of %s: %w", sheet, key, err)
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell = strings.TrimSpace(cell); cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) > 0 {
				lines = append(lines, strings.Join(cells, " "))
			}
		}
		if len(lines) > 0 {
			sheets = append(sheets, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(sheets, "\n\n"), nil
}
