package analysis

import "github.com/kirillkom/document-analyzer/internal/core/domain"

// neutralConfidence is reported whenever positive and negative scores tie,
// including ties where both are non-zero.
const neutralConfidence = 0.5

func Sentiment(text string) domain.Sentiment {
	words := Words(text)
	if len(words) == 0 {
		return domain.Sentiment{Sentiment: domain.SentimentNeutral}
	}

	positiveCount, negativeCount := 0, 0
	for _, word := range words {
		if IsPositiveWord(word) {
			positiveCount++
		}
		if IsNegativeWord(word) {
			negativeCount++
		}
	}

	total := float64(len(words))
	positive := float64(positiveCount) / total
	negative := float64(negativeCount) / total

	label := domain.SentimentNeutral
	confidence := neutralConfidence
	switch {
	case positive > negative:
		label = domain.SentimentPositive
		confidence = positive
	case negative > positive:
		label = domain.SentimentNegative
		confidence = negative
	}

	return domain.Sentiment{
		Sentiment:  label,
		Confidence: round(confidence, 3),
		Scores: domain.SentimentScores{
			Positive: round(positive, 3),
			Negative: round(negative, 3),
			Neutral:  round(1-positive-negative, 3),
		},
	}
}
