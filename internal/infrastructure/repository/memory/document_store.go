package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

// DocumentStore is an append-only, process-local document store. Ids are
// assigned sequentially starting at "1".
type DocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]domain.Document
	order  []string
	nextID int
	now    func() time.Time
}

type Option func(*DocumentStore)

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(s *DocumentStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewDocumentStore(opts ...Option) *DocumentStore {
	s := &DocumentStore{
		docs:   make(map[string]domain.Document),
		nextID: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DocumentStore) Add(_ context.Context, in domain.NewDocument) (domain.Document, error) {
	in = in.Normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := domain.Document{
		ID:        strconv.Itoa(s.nextID),
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		Category:  in.Category,
		Tags:      in.Tags,
		CreatedAt: s.now(),
	}
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	s.nextID++
	return doc.Clone(), nil
}

func (s *DocumentStore) Get(_ context.Context, id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, false
	}
	return doc.Clone(), true
}

// Search matches query case-insensitively as a substring of the title, the
// content or any tag. An empty query matches every document.
func (s *DocumentStore) Search(_ context.Context, query string) []domain.Document {
	query = strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, 0)
	for _, id := range s.order {
		doc := s.docs[id]
		if matches(doc, query) {
			out = append(out, doc.Clone())
		}
	}
	return out
}

func (s *DocumentStore) List(_ context.Context) []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id].Clone())
	}
	return out
}

func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func matches(doc domain.Document, query string) bool {
	if strings.Contains(strings.ToLower(doc.Title), query) ||
		strings.Contains(strings.ToLower(doc.Content), query) {
		return true
	}
	for _, tag := range doc.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
