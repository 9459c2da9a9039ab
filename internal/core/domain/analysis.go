package domain

import "time"

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

type SentimentScores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

type Sentiment struct {
	Sentiment  SentimentLabel  `json:"sentiment"`
	Confidence float64         `json:"confidence"`
	Scores     SentimentScores `json:"scores"`
}

type Keyword struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Relevance float64 `json:"relevance"`
}

type Readability struct {
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	FleschGradeLevel  float64 `json:"flesch_grade_level"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	AvgWordLength     float64 `json:"avg_word_length"`
	Difficulty        string  `json:"difficulty"`
}

type TextStats struct {
	WordCount              int     `json:"word_count"`
	SentenceCount          int     `json:"sentence_count"`
	CharacterCount         int     `json:"character_count"`
	CharacterCountNoSpaces int     `json:"character_count_no_spaces"`
	ParagraphCount         int     `json:"paragraph_count"`
	AvgWordsPerSentence    float64 `json:"avg_words_per_sentence"`
}

// TextAnalysis bundles every analysis of a single text.
type TextAnalysis struct {
	Sentiment   Sentiment   `json:"sentiment"`
	Keywords    []Keyword   `json:"keywords"`
	Readability Readability `json:"readability"`
	Stats       TextStats   `json:"stats"`
}

// DocumentAnalysis is computed on every request and never stored.
type DocumentAnalysis struct {
	DocumentID  string      `json:"document_id"`
	Title       string      `json:"title"`
	Author      *string     `json:"author"`
	Category    *string     `json:"category"`
	Sentiment   Sentiment   `json:"sentiment"`
	Keywords    []Keyword   `json:"keywords"`
	Readability Readability `json:"readability"`
	Stats       TextStats   `json:"stats"`
	Timestamp   time.Time   `json:"timestamp"`
}
