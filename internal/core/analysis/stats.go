package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func Stats(text string) domain.TextStats {
	words := Words(text)
	sentences := Sentences(text)

	paragraphs := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimFunc(block, isSpace) != "" {
			paragraphs++
		}
	}

	avg := 0.0
	if len(sentences) > 0 {
		avg = round(float64(len(words))/float64(len(sentences)), 2)
	}

	return domain.TextStats{
		WordCount:              len(words),
		SentenceCount:          len(sentences),
		CharacterCount:         utf8.RuneCountInString(text),
		CharacterCountNoSpaces: utf8.RuneCountInString(strings.ReplaceAll(text, " ", "")),
		ParagraphCount:         paragraphs,
		AvgWordsPerSentence:    avg,
	}
}

// Analyze runs every analysis over text with the default keyword limit.
func Analyze(text string) domain.TextAnalysis {
	return domain.TextAnalysis{
		Sentiment:   Sentiment(text),
		Keywords:    Keywords(text, DefaultKeywordLimit),
		Readability: Readability(text),
		Stats:       Stats(text),
	}
}
