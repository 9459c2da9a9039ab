package analysis

import (
	"strconv"
	"strings"
	"unicode"
)

// Words lowercases text, strips everything that is neither a word rune nor
// whitespace and splits the remainder on whitespace.
func Words(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || isSpace(r) {
			return r
		}
		return -1
	}, lowered)
	return strings.FieldsFunc(cleaned, isSpace)
}

// Sentences splits raw text on runs of '.', '!' and '?' and drops blank pieces.
func Sentences(text string) []string {
	pieces := strings.FieldsFunc(text, isSentenceTerminator)
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimFunc(piece, isSpace)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace extends unicode.IsSpace with the ASCII file, group, record and unit
// separators (U+001C..U+001F), which also delimit words.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// round formats through strconv so halves resolve on the exact binary value.
func round(v float64, places int) float64 {
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return out
}
