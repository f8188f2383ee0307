package nlp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Natural time expressions mapped to canonical clock times.
var timeExpressions = map[string]Clock{
	"early morning": {6, 0},
	"morning":       {8, 0},
	"subah":         {8, 0},
	"afternoon":     {13, 0},
	"dopahar":       {13, 0},
	"evening":       {17, 30},
	"shaam":         {17, 30},
	"night":         {21, 0},
	"raat":          {21, 0},
	"late night":    {22, 30},
	"rush hour":     {8, 30},
	"peak time":     {8, 30},
	"peak hour":     {8, 30},
	"off peak":      {13, 0},
	"lunch time":    {12, 30},
}

// Longest expression first so "late night" wins over "night".
var orderedExpressions = func() []string {
	keys := make([]string, 0, len(timeExpressions))
	for k := range timeExpressions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var (
	ampmPattern    = regexp.MustCompile(`\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm|a|p)\b`)
	clock24Pattern = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	barePattern    = regexp.MustCompile(`(?:around|after|by|before)\s+(\d{1,2})(:?)`)
)

var morningWords = []string{"morning", "early"}

// ExtractTime resolves a time of day from an utterance, trying in order:
// natural expressions, explicit am/pm or 24-hour clock notation, then
// bare numbers following a preposition ("around 5"). Bare numbers
// default to PM unless a morning word appears, since commute queries
// dominate.
func ExtractTime(query string) (Clock, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, expr := range orderedExpressions {
		if strings.Contains(q, expr) {
			return timeExpressions[expr], true
		}
	}

	if m := ampmPattern.FindStringSubmatch(q); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour >= 1 && hour <= 12 {
			pm := m[3] == "pm" || m[3] == "p"
			if pm && hour != 12 {
				hour += 12
			}
			if !pm && hour == 12 {
				hour = 0
			}
			return Clock{Hour: hour, Minute: minute}, true
		}
	}

	if m := clock24Pattern.FindStringSubmatch(q); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return Clock{Hour: hour, Minute: minute}, true
	}

	if m := barePattern.FindStringSubmatch(q); m != nil && m[2] != ":" {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			morning := false
			for _, w := range morningWords {
				if strings.Contains(q, w) {
					morning = true
					break
				}
			}
			if !morning && hour != 12 {
				hour += 12
			}
			return Clock{Hour: hour}, true
		}
	}

	return Clock{}, false
}
