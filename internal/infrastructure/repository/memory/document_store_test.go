package memory

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	store := NewDocumentStore(WithClock(fixedClock))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		doc, err := store.Add(ctx, domain.NewDocument{Title: "T", Content: "c"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i), doc.ID)
		assert.Equal(t, fixedClock(), doc.CreatedAt)
	}
	assert.Equal(t, 3, store.Len())
}

func TestAddDefaultsOptionalFields(t *testing.T) {
	store := NewDocumentStore()
	doc, err := store.Add(context.Background(), domain.NewDocument{})
	require.NoError(t, err)

	assert.Equal(t, "1", doc.ID)
	assert.Empty(t, doc.Title)
	assert.Nil(t, doc.Author)
	assert.Nil(t, doc.Category)
	assert.NotNil(t, doc.Tags)
	assert.Empty(t, doc.Tags)
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestGetReturnsStoredDocument(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	added, err := store.Add(ctx, domain.NewDocument{
		Title:    "T",
		Content:  "body",
		Author:   domain.StringPtr("Ann"),
		Category: domain.StringPtr("Notes"),
		Tags:     []string{"x"},
	})
	require.NoError(t, err)

	got, ok := store.Get(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "Ann", domain.StringValue(got.Author))
	assert.Equal(t, added.CreatedAt, got.CreatedAt)

	_, ok = store.Get(ctx, "999")
	assert.False(t, ok)
	_, ok = store.Get(ctx, " 1")
	assert.False(t, ok)
}

func TestStoredDocumentsAreNotMutableThroughResults(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	tags := []string{"Original"}
	added, err := store.Add(ctx, domain.NewDocument{Title: "T", Tags: tags})
	require.NoError(t, err)

	tags[0] = "changed-input"
	added.Tags[0] = "changed-result"
	listed := store.List(ctx)
	listed[0].Tags[0] = "changed-list"

	got, ok := store.Get(ctx, added.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"Original"}, got.Tags)
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()
	mustAdd(t, store, domain.NewDocument{Title: "Solar Power", Content: "Panels.", Tags: []string{"energy"}})
	mustAdd(t, store, domain.NewDocument{Title: "Diet", Content: "Eat more VEGETABLES.", Tags: []string{"health"}})
	mustAdd(t, store, domain.NewDocument{Title: "Sleep", Content: "Rest.", Tags: []string{"Wellness", "Health Tips"}})

	tests := []struct {
		query string
		want  []string
	}{
		{query: "solar", want: []string{"1"}},
		{query: "vegetables", want: []string{"2"}},
		{query: "HEALTH", want: []string{"2", "3"}},
		{query: "wellness", want: []string{"3"}},
		{query: "e", want: []string{"1", "2", "3"}},
		{query: "", want: []string{"1", "2", "3"}},
		{query: "missing", want: []string{}},
	}
	for _, tc := range tests {
		got := store.Search(ctx, tc.query)
		ids := make([]string, 0, len(got))
		for _, doc := range got {
			ids = append(ids, doc.ID)
		}
		assert.Equal(t, tc.want, ids, "query %q", tc.query)
	}

	stored, _ := store.Get(ctx, "3")
	assert.Equal(t, []string{"Wellness", "Health Tips"}, stored.Tags)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := NewDocumentStore()
	for i := 0; i < 12; i++ {
		mustAdd(t, store, domain.NewDocument{Title: strconv.Itoa(i)})
	}

	docs := store.List(context.Background())
	require.Len(t, docs, 12)
	for i, doc := range docs {
		assert.Equal(t, strconv.Itoa(i+1), doc.ID)
		assert.Equal(t, strconv.Itoa(i), doc.Title)
	}
}

func TestConcurrentAddsProduceUniqueIDs(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	const writers = 8
	const perWriter = 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, _ = store.Add(ctx, domain.NewDocument{Title: "t"})
				_ = store.Search(ctx, "t")
			}
		}()
	}
	wg.Wait()

	docs := store.List(ctx)
	require.Len(t, docs, writers*perWriter)
	seen := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		assert.Equal(t, strconv.Itoa(i+1), doc.ID)
		seen[doc.ID] = struct{}{}
	}
	assert.Len(t, seen, writers*perWriter)
}

func mustAdd(t *testing.T, store *DocumentStore, doc domain.NewDocument) domain.Document {
	t.Helper()
	added, err := store.Add(context.Background(), doc)
	require.NoError(t, err)
	return added
}
