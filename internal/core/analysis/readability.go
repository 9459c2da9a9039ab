package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

const DifficultyUnknown = "unknown"

var difficultyBands = []struct {
	min   float64
	label string
}{
	{90, "very easy"},
	{80, "easy"},
	{70, "fairly easy"},
	{60, "standard"},
	{50, "fairly difficult"},
	{30, "difficult"},
}

// Readability computes Flesch reading ease (clamped to [0,100]) and the
// Flesch-Kincaid grade level (floored at 0, no upper bound).
func Readability(text string) domain.Readability {
	words := Words(text)
	sentences := Sentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return domain.Readability{Difficulty: DifficultyUnknown}
	}

	syllables, runes := 0, 0
	for _, word := range words {
		syllables += CountSyllables(word)
		runes += utf8.RuneCountInString(word)
	}

	wordCount := float64(len(words))
	avgSentenceLength := wordCount / float64(len(sentences))
	avgSyllables := float64(syllables) / wordCount
	avgWordLength := float64(runes) / wordCount

	ease := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllables
	ease = max(0, min(100, ease))
	grade := max(0, 0.39*avgSentenceLength+11.8*avgSyllables-15.59)

	return domain.Readability{
		FleschReadingEase: round(ease, 2),
		FleschGradeLevel:  round(grade, 2),
		AvgSentenceLength: round(avgSentenceLength, 2),
		AvgWordLength:     round(avgWordLength, 2),
		Difficulty:        difficultyFor(ease),
	}
}

func difficultyFor(ease float64) string {
	for _, band := range difficultyBands {
		if ease >= band.min {
			return band.label
		}
	}
	return "very difficult"
}

// CountSyllables estimates syllables by counting vowel groups, dropping a
// trailing silent "e". Every word has at least one syllable.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	previousVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !previousVowel {
			count++
		}
		previousVowel = vowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	return max(1, count)
}
