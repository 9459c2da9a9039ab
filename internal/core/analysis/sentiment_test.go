package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Sentiment
	}{
		{
			name: "empty text",
			text: "",
			want: domain.Sentiment{Sentiment: domain.SentimentNeutral},
		},
		{
			name: "positive majority",
			text: "Good, good... bad!",
			want: domain.Sentiment{
				Sentiment:  domain.SentimentPositive,
				Confidence: 0.667,
				Scores:     domain.SentimentScores{Positive: 0.667, Negative: 0.333, Neutral: 0},
			},
		},
		{
			name: "negative",
			text: "This is terrible.",
			want: domain.Sentiment{
				Sentiment:  domain.SentimentNegative,
				Confidence: 0.333,
				Scores:     domain.SentimentScores{Positive: 0, Negative: 0.333, Neutral: 0.667},
			},
		},
		{
			name: "tie with non-zero scores stays neutral at 0.5",
			text: "good bad",
			want: domain.Sentiment{
				Sentiment:  domain.SentimentNeutral,
				Confidence: 0.5,
				Scores:     domain.SentimentScores{Positive: 0.5, Negative: 0.5, Neutral: 0},
			},
		},
		{
			name: "no lexicon words",
			text: "The cat sat on the mat",
			want: domain.Sentiment{
				Sentiment:  domain.SentimentNeutral,
				Confidence: 0.5,
				Scores:     domain.SentimentScores{Positive: 0, Negative: 0, Neutral: 1},
			},
		},
		{
			name: "case insensitive lexicon match",
			text: "EXCELLENT work",
			want: domain.Sentiment{
				Sentiment:  domain.SentimentPositive,
				Confidence: 0.5,
				Scores:     domain.SentimentScores{Positive: 0.5, Negative: 0, Neutral: 0.5},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sentiment(tc.text))
		})
	}
}

func TestLexiconSizes(t *testing.T) {
	assert.Len(t, positiveWords, 37)
	assert.Len(t, negativeWords, 30)
	for word := range positiveWords {
		assert.False(t, IsNegativeWord(word), "word %q is in both lexicons", word)
	}
}
