package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func TestKeywordsRanksByFrequency(t *testing.T) {
	got := Keywords("Apple banana apple. Cherry banana apple!", 10)
	assert.Equal(t, []domain.Keyword{
		{Word: "apple", Frequency: 3, Relevance: 0.5},
		{Word: "banana", Frequency: 2, Relevance: 0.333},
		{Word: "cherry", Frequency: 1, Relevance: 0.167},
	}, got)
}

func TestKeywordsTiesKeepFirstSeenOrder(t *testing.T) {
	got := Keywords("zeta alpha zeta alpha beta", 10)
	require.Len(t, got, 3)
	assert.Equal(t, "zeta", got[0].Word)
	assert.Equal(t, "alpha", got[1].Word)
	assert.Equal(t, "beta", got[2].Word)
}

func TestKeywordsStopWordsBeforeLengthFilter(t *testing.T) {
	assert.Empty(t, Keywords("the the the a a", 10))
	got := Keywords("go is ok but fun", 10)
	assert.Equal(t, []domain.Keyword{{Word: "fun", Frequency: 1, Relevance: 1}}, got)
}

func TestKeywordsLimit(t *testing.T) {
	text := "alpha beta gamma delta alpha beta alpha"
	assert.Empty(t, Keywords(text, 0))
	assert.Empty(t, Keywords(text, -3))

	two := Keywords(text, 2)
	require.Len(t, two, 2)
	assert.Equal(t, "alpha", two[0].Word)
	assert.Equal(t, "beta", two[1].Word)

	assert.Len(t, Keywords(text, 100), 4)
}

func TestKeywordsRelevanceSumsToAtMostOne(t *testing.T) {
	text := "Renewable energy sources like solar and wind power offer tremendous benefits for our planet. " +
		"They reduce greenhouse gas emissions, create jobs, and provide sustainable solutions for future generations. " +
		"Solar panels and wind turbines are becoming more efficient and cost-effective each year."
	for _, limit := range []int{1, 3, 10, 1000} {
		sum := 0.0
		for _, kw := range Keywords(text, limit) {
			sum += kw.Relevance
		}
		assert.LessOrEqual(t, sum, 1.0+1e-9, "limit=%d", limit)
	}
}

func TestKeywordsEmptyText(t *testing.T) {
	got := Keywords("", DefaultKeywordLimit)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
