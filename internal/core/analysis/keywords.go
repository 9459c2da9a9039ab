package analysis

import (
	"sort"
	"unicode/utf8"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

const (
	DefaultKeywordLimit = 10
	minKeywordRunes     = 3
)

// Keywords ranks non-stop words of three or more runes by frequency. Ties keep
// the order in which the words first appeared.
func Keywords(text string, limit int) []domain.Keyword {
	if limit <= 0 {
		return []domain.Keyword{}
	}

	counts := make(map[string]int)
	order := make([]string, 0, 32)
	total := 0
	for _, word := range Words(text) {
		if IsStopWord(word) || utf8.RuneCountInString(word) < minKeywordRunes {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
		total++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit < len(order) {
		order = order[:limit]
	}

	out := make([]domain.Keyword, 0, len(order))
	for _, word := range order {
		relevance := 0.0
		if total > 0 {
			relevance = round(float64(counts[word])/float64(total), 3)
		}
		out = append(out, domain.Keyword{
			Word:      word,
			Frequency: counts[word],
			Relevance: relevance,
		})
	}
	return out
}
