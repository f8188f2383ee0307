package intent

import "strings"

// keywordRules are the rule-based fallback path, tried in order when the
// statistical classifier degrades to Unknown.
var keywordRules = []struct {
	intent Intent
	words  []string
}{
	{Fare, []string{"fare", "price", "cost", "ticket price", "kiraya", "how much"}},
	{Concession, []string{"concession", "student", "senior citizen", "discount", "disabled"}},
	{Luggage, []string{"luggage", "baggage", "bag", "cycle", "allowance"}},
	{Pass, []string{"monthly pass", "season pass", "season ticket", "pass"}},
	{Platform, []string{"platform"}},
	{PeakHours, []string{"peak", "rush", "crowd", "crowded"}},
	{ACTrain, []string{"ac train", "ac local", "air condition"}},
	{Metro, []string{"metro"}},
	{BusConnection, []string{"bus", "how to reach", "how do i reach"}},
	{Review, []string{"review", "rating", "feedback"}},
	{Route, []string{" to ", "from ", "train", "next train", "timing", "schedule"}},
}

// KeywordIntent classifies with substring rules. It is entity-agnostic:
// callers holding two resolved stations should treat Unknown as Route.
func KeywordIntent(text string) Intent {
	q := " " + strings.ToLower(strings.TrimSpace(text)) + " "
	for _, rule := range keywordRules {
		for _, w := range rule.words {
			if strings.Contains(q, w) {
				return rule.intent
			}
		}
	}
	return Unknown
}
