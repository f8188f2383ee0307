package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mumbailocal/railbot/station"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Extract resolves the station mentions in an utterance, preserving the
// left-to-right order of first occurrence. Multi-word station phrases
// are matched as contiguous spans before any single-token lookup, so
// "Grant Road" never degrades into two failed single-word lookups.
// Single-token fuzzy matching only runs while fewer than two stations
// have been found.
func Extract(query string, reg *station.Registry) []*station.Station {
	tokens := wordPattern.FindAllString(strings.ToLower(query), -1)
	if len(tokens) == 0 {
		return nil
	}

	type match struct {
		pos int
		st  *station.Station
	}
	var matches []match
	covered := make([]bool, len(tokens))

	// Exact and alias matching, widest spans first.
	for n := reg.MaxPhraseTokens(); n >= 1; n-- {
		for i := 0; i+n <= len(tokens); i++ {
			if anyCovered(covered, i, i+n) {
				continue
			}
			phrase := strings.Join(tokens[i:i+n], " ")
			if st, ok := reg.ResolveExact(phrase); ok {
				matches = append(matches, match{pos: i, st: st})
				for j := i; j < i+n; j++ {
					covered[j] = true
				}
			}
		}
	}

	// Fuzzy fallback for the remaining tokens, only while the turn is
	// still missing an endpoint.
	if len(matches) < 2 {
		for i, tok := range tokens {
			if covered[i] {
				continue
			}
			if st, ok := reg.ResolveFuzzy(tok); ok {
				matches = append(matches, match{pos: i, st: st})
				covered[i] = true
				if len(matches) >= 2 {
					break
				}
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	seen := map[*station.Station]bool{}
	var out []*station.Station
	for _, m := range matches {
		if seen[m.st] {
			continue
		}
		seen[m.st] = true
		out = append(out, m.st)
	}
	return out
}

func anyCovered(covered []bool, from, to int) bool {
	for i := from; i < to; i++ {
		if covered[i] {
			return true
		}
	}
	return false
}
