package nlp

import "strings"

// Common Hindi words mapped to English equivalents.
var hindiWords = map[string]string{
	"se": "from", "tak": "to", "jana": "to", "jaana": "to",
	"kaise": "how", "kab": "when",
	"gaadi": "train", "gadi": "train",
	"subah": "morning", "dopahar": "afternoon", "shaam": "evening",
	"raat": "night", "baje": "o'clock",
	"kitna": "how much", "kitne": "how much",
	"kahan": "where", "kaun": "which", "konsa": "which",
	"kiraya": "fare", "paisa": "money",
	"chalti": "running", "aati": "coming", "milegi": "available",
	"hai": "is", "hain": "are",
}

// Marathi words mapped to English equivalents.
var marathiWords = map[string]string{
	"pasun": "from", "la": "to", "kadhe": "to",
	"kiti": "how much", "kuthe": "where", "kasa": "how", "konti": "which",
	"sakali": "morning", "dupari": "afternoon",
	"sandhyakali": "evening", "ratri": "night",
	"aahe": "is", "asel": "will be",
	"bhada": "fare",
}

// Language is a best-effort guess at the utterance language.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Marathi Language = "marathi"
)

// DetectLanguage guesses the language from keyword counts. Two or more
// hits are required so single loan words don't flip the detection.
func DetectLanguage(query string) Language {
	hindi, marathi := 0, 0
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if _, ok := hindiWords[w]; ok {
			hindi++
		}
		if _, ok := marathiWords[w]; ok {
			marathi++
		}
	}
	if hindi >= 2 && hindi >= marathi {
		return Hindi
	}
	if marathi >= 2 {
		return Marathi
	}
	return English
}

// Normalize rewrites Hindi/Marathi keywords into their English
// equivalents so the extractor and classifier see one vocabulary.
// Unknown words pass through untouched.
func Normalize(query string) string {
	words := strings.Fields(strings.ToLower(query))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if repl, ok := hindiWords[w]; ok {
			out = append(out, repl)
		} else if repl, ok := marathiWords[w]; ok {
			out = append(out, repl)
		} else {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
