package session

import (
	"strings"

	"github.com/mumbailocal/railbot/intent"
	"github.com/mumbailocal/railbot/nlp"
	"github.com/mumbailocal/railbot/station"
)

// followUpCues mark a turn as an elliptical continuation of the prior
// query.
var followUpCues = []string{
	"what about", "and from", "and to", "also", "how about",
	"after", "before", "around", "same but", "change to",
	"instead", "switch to", "from there",
}

// Context is the per-session conversation memory.
type Context struct {
	LastSource *station.Station
	LastDest   *station.Station
	LastTime   *nlp.Clock
	LastIntent intent.Intent
}

// HasFollowUpCue reports whether the utterance contains a follow-up cue
// phrase.
func HasFollowUpCue(query string) bool {
	q := strings.ToLower(query)
	for _, cue := range followUpCues {
		if strings.Contains(q, cue) {
			return true
		}
	}
	return false
}

func containsWord(query, word string) bool {
	for _, f := range strings.Fields(strings.ToLower(query)) {
		if f == word {
			return true
		}
	}
	return false
}

// Resolve fills missing stations and time from context. The heuristics
// for a single extracted station are literal: "from" replaces the
// source, "to" replaces the destination, and a bare follow-up cue
// defaults to replacing the source.
func Resolve(query string, stations []*station.Station, t *nlp.Clock, ctx *Context) ([]*station.Station, *nlp.Clock) {
	if ctx == nil {
		return stations, t
	}

	cued := HasFollowUpCue(query)

	switch len(stations) {
	case 0:
		if (ctx.LastSource != nil || ctx.LastDest != nil) && (cued || t != nil) {
			if ctx.LastSource != nil {
				stations = append(stations, ctx.LastSource)
			}
			if ctx.LastDest != nil {
				stations = append(stations, ctx.LastDest)
			}
		}
	case 1:
		newStation := stations[0]
		switch {
		case containsWord(query, "from") && ctx.LastDest != nil:
			stations = []*station.Station{newStation, ctx.LastDest}
		case containsWord(query, "to") && ctx.LastSource != nil:
			stations = []*station.Station{ctx.LastSource, newStation}
		case cued && ctx.LastSource != nil && ctx.LastDest != nil:
			stations = []*station.Station{newStation, ctx.LastDest}
		}
	}

	if t == nil && ctx.LastTime != nil && cued {
		t = ctx.LastTime
	}

	return stations, t
}

// Update folds the turn into context. Only fields with a concrete value
// this turn are overwritten; a silent turn never clears anything.
func (c *Context) Update(stations []*station.Station, t *nlp.Clock, in intent.Intent) {
	if len(stations) >= 1 {
		c.LastSource = stations[0]
	}
	if len(stations) >= 2 {
		c.LastDest = stations[1]
	}
	if t != nil {
		c.LastTime = t
	}
	if in != intent.Unknown {
		c.LastIntent = in
	}
}

// ResetJourney clears the journey slots on new-topic detection. The
// intent survives so the topic switch itself is remembered.
func (c *Context) ResetJourney() {
	c.LastSource = nil
	c.LastDest = nil
	c.LastTime = nil
}
