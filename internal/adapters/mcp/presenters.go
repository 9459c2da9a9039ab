package mcpadapter

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

type errorView struct {
	Error string `json:"error"`
}

type addedView struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

func newAddedView(doc *domain.Document) addedView {
	return addedView{
		DocumentID: doc.ID,
		Title:      doc.Title,
		Status:     "added",
		Message:    fmt.Sprintf("Document '%s' added successfully with ID %s", doc.Title, doc.ID),
	}
}

type searchResultView struct {
	DocumentID string   `json:"document_id"`
	Title      string   `json:"title"`
	Author     *string  `json:"author"`
	Category   *string  `json:"category"`
	Tags       []string `json:"tags"`
	Snippet    string   `json:"snippet"`
}

func newSearchResultView(doc domain.Document, snippetLength int) searchResultView {
	return searchResultView{
		DocumentID: doc.ID,
		Title:      doc.Title,
		Author:     doc.Author,
		Category:   doc.Category,
		Tags:       nonNil(doc.Tags),
		Snippet:    Snippet(doc.Content, snippetLength),
	}
}

type listItemView struct {
	DocumentID string    `json:"document_id"`
	Title      string    `json:"title"`
	Author     *string   `json:"author"`
	Category   *string   `json:"category"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

func newListItemView(doc domain.Document) listItemView {
	return listItemView{
		DocumentID: doc.ID,
		Title:      doc.Title,
		Author:     doc.Author,
		Category:   doc.Category,
		Tags:       nonNil(doc.Tags),
		CreatedAt:  doc.CreatedAt,
	}
}

// Snippet returns the first n characters of content, marked with "..." when
// content is longer.
func Snippet(content string, n int) string {
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	runes := []rune(content)
	return string(runes[:n]) + "..."
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
