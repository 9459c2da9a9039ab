package analysis

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome",
	"love", "like", "enjoy", "happy", "pleased", "satisfied", "delighted",
	"benefits", "advantages", "success", "effective", "efficient", "improve",
	"better", "best", "perfect", "outstanding", "remarkable", "positive",
	"opportunity", "solution", "helpful", "useful", "valuable", "important",
	"essential", "crucial", "significant", "rewarding", "promising",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "hate", "dislike", "sad",
	"disappointed", "frustrated", "angry", "annoyed", "problems", "issues",
	"challenges", "difficult", "hard", "impossible", "failure", "fail",
	"worst", "poor", "disappointing", "negative", "wrong", "error",
	"mistakes", "concerning", "worried", "stress", "overwhelming",
)

var stopWords = wordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "is", "are", "was", "were", "be", "been", "have",
	"has", "had", "do", "does", "did", "will", "would", "could", "should",
	"may", "might", "can", "this", "that", "these", "those", "i", "you",
	"he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"my", "your", "his", "its", "our", "their", "all", "any",
	"each", "few", "more", "most", "other", "some", "such", "no", "not",
	"only", "own", "same", "so", "than", "too", "very", "just", "now",
)

func wordSet(words ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		out[w] = struct{}{}
	}
	return out
}

func IsPositiveWord(word string) bool {
	_, ok := positiveWords[word]
	return ok
}

func IsNegativeWord(word string) bool {
	_, ok := negativeWords[word]
	return ok
}

func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
