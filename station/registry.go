package station

import (
	"strings"

	"github.com/agext/levenshtein"
)

// fuzzyCutoff is the minimum normalized similarity an approximate match
// must reach. Below it, short or garbled tokens are rejected instead of
// being forced onto the nearest station name.
const fuzzyCutoff = 0.58

// Registry stores the station vocabulary in memory for fast lookups.
// It is built once at startup and treated as immutable.
type Registry struct {
	byName  map[string]*Station // lower(canonical) -> station
	aliases map[string]string   // lower(alias) -> canonical
	lines   map[Line][]*Station // corridor order
	vocab   []string            // canonical names, corridor order, deduplicated
}

// NewRegistry builds the registry from the built-in corridor tables.
func NewRegistry() *Registry {
	r := &Registry{
		byName:  map[string]*Station{},
		aliases: map[string]string{},
		lines:   map[Line][]*Station{},
	}
	corridors := []struct {
		line Line
		seq  []string
	}{
		{Western, westernLine},
		{Central, centralLine},
		{Harbour, harbourLine},
	}
	for _, c := range corridors {
		for i, name := range c.seq {
			s := r.intern(name)
			s.Lines[c.line] = true
			s.Ordinal[c.line] = i
			r.lines[c.line] = append(r.lines[c.line], s)
		}
	}
	for name, lines := range branchMemberships {
		if s, ok := r.byName[strings.ToLower(name)]; ok {
			for _, l := range lines {
				s.Lines[l] = true
			}
		}
	}
	for alias, canonical := range stationAliases {
		r.aliases[alias] = canonical
	}
	return r
}

func (r *Registry) intern(name string) *Station {
	key := strings.ToLower(name)
	if s, ok := r.byName[key]; ok {
		return s
	}
	s := &Station{
		Name:    name,
		Lines:   map[Line]bool{},
		Ordinal: map[Line]int{},
	}
	r.byName[key] = s
	r.vocab = append(r.vocab, name)
	return s
}

// Get looks up a canonical name, case-insensitively. No alias or fuzzy
// matching is attempted.
func (r *Registry) Get(name string) (*Station, bool) {
	s, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// ResolveExact runs the first two stages of the matcher chain: exact
// canonical match, then the alias table.
func (r *Registry) ResolveExact(token string) (*Station, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if key == "" {
		return nil, false
	}
	if s, ok := r.byName[key]; ok {
		return s, true
	}
	if canonical, ok := r.aliases[key]; ok {
		return r.byName[strings.ToLower(canonical)], true
	}
	return nil, false
}

// Resolve runs the full matcher chain: exact -> alias -> approximate.
// The stages are evaluated in that order and short-circuit on the first
// hit. Stop words and tokens shorter than three runes never reach the
// fuzzy stage.
func (r *Registry) Resolve(token string) (*Station, bool) {
	if s, ok := r.ResolveExact(token); ok {
		return s, true
	}
	return r.ResolveFuzzy(token)
}

// ResolveFuzzy matches a single token approximately against the full
// station vocabulary.
func (r *Registry) ResolveFuzzy(token string) (*Station, bool) {
	key := strings.ToLower(strings.TrimSpace(token))
	if len([]rune(key)) < 3 || r.IsStopWord(key) {
		return nil, false
	}
	bestScore := fuzzyCutoff
	var best *Station
	for _, name := range r.vocab {
		score := levenshtein.Match(key, strings.ToLower(name), nil)
		if score > bestScore {
			bestScore = score
			best = r.byName[strings.ToLower(name)]
		}
	}
	return best, best != nil
}

// IsStopWord reports whether a lowercase token is excluded from fuzzy
// candidacy.
func (r *Registry) IsStopWord(token string) bool { return stopWords[token] }

// LineStations returns the ordered corridor sequence for a line.
func (r *Registry) LineStations(l Line) []*Station { return r.lines[l] }

// Names returns all canonical station names.
func (r *Registry) Names() []string { return r.vocab }

// MaxPhraseTokens is the longest station name or alias measured in
// whitespace-separated tokens; the extractor slides spans up to this
// size before single-token matching.
func (r *Registry) MaxPhraseTokens() int {
	max := 1
	count := func(s string) {
		if n := len(strings.Fields(s)); n > max {
			max = n
		}
	}
	for _, name := range r.vocab {
		count(name)
	}
	for alias := range r.aliases {
		count(alias)
	}
	return max
}
