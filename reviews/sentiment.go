package reviews

import "strings"

// Word lists cover the vocabulary of one-line commute reviews.
var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "clean": true,
	"comfortable": true, "fast": true, "reliable": true, "punctual": true,
	"convenient": true, "spacious": true, "safe": true, "best": true,
	"nice": true, "easy": true, "connected": true,
}

var negativeWords = map[string]bool{
	"bad": true, "worst": true, "terrible": true, "dirty": true,
	"crowded": true, "packed": true, "late": true, "delayed": true,
	"slow": true, "unsafe": true, "broken": true, "overcrowded": true,
	"horrible": true, "stinks": true,
}

// Sentiment labels one comment as "positive", "negative" or "neutral"
// by lexicon word counts.
func Sentiment(text string) string {
	pos, neg := 0, 0
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.Trim(w, ".,!?")
		if positiveWords[w] {
			pos++
		}
		if negativeWords[w] {
			neg++
		}
	}
	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	default:
		return "neutral"
	}
}

// SentimentSummary labels a collection of reviews as "mostly positive",
// "mostly negative" or "mixed" and returns the per-label counts.
// Comment-less reviews count as neutral.
func SentimentSummary(revs []Review) (label string, pos, neg int) {
	for _, r := range revs {
		switch Sentiment(r.Comment) {
		case "positive":
			pos++
		case "negative":
			neg++
		}
	}
	switch {
	case pos > neg:
		label = "mostly positive"
	case neg > pos:
		label = "mostly negative"
	default:
		label = "mixed"
	}
	return label, pos, neg
}
