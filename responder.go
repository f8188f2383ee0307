package railbot

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/mumbailocal/railbot/bus"
	"github.com/mumbailocal/railbot/config"
	"github.com/mumbailocal/railbot/fare"
	"github.com/mumbailocal/railbot/intent"
	"github.com/mumbailocal/railbot/nlp"
	"github.com/mumbailocal/railbot/reviews"
	"github.com/mumbailocal/railbot/router"
	"github.com/mumbailocal/railbot/rules"
	"github.com/mumbailocal/railbot/schedule"
	"github.com/mumbailocal/railbot/session"
	"github.com/mumbailocal/railbot/station"
	"github.com/mumbailocal/railbot/stationinfo"
)

// Responder holds the loaded reference data and per-session state and
// answers one chat turn at a time. Schedule, Rules and Reviews may be
// nil or empty; the affected answers degrade while everything else
// keeps working.
type Responder struct {
	Registry   *station.Registry
	Router     *router.Router
	Classifier *intent.Classifier
	Schedule   *schedule.Table
	Rules      *rules.Rules
	Reviews    *reviews.Store
	Sessions   *session.Store
}

// NewResponder builds a responder from the loaded application
// configuration. Missing data files degrade their feature and are
// logged, never fatal.
func NewResponder() (*Responder, error) {
	reg := station.NewRegistry()

	sessions, err := session.NewStore(config.Config.Sessions.Capacity)
	if err != nil {
		return nil, err
	}

	r := &Responder{
		Registry:   reg,
		Router:     router.New(reg),
		Classifier: intent.NewClassifier(config.Config.Data.IntentModelPath, config.Config.Data.IntentPhrasesPath),
		Sessions:   sessions,
	}

	if tbl, err := schedule.Load(config.Config.Data.SchedulePath); err != nil {
		log.Printf("schedule unavailable: %v", err)
	} else {
		r.Schedule = tbl
	}

	ruleText, err := rules.Load(config.Config.Data.RulesPath)
	if err != nil {
		log.Printf("rules unavailable: %v", err)
		ruleText = &rules.Rules{}
	}
	r.Rules = ruleText

	if store, err := reviews.Open(config.Config.Data.ReviewsDBPath); err != nil {
		log.Printf("reviews unavailable: %v", err)
	} else {
		r.Reviews = store
	}

	return r, nil
}

// Close releases resources held by the responder.
func (r *Responder) Close() error {
	if r.Reviews != nil {
		return r.Reviews.Close()
	}
	return nil
}

// Analysis is the per-turn result of understanding one utterance,
// before conversation context is applied.
type Analysis struct {
	Raw        string
	Stations   []*station.Station
	Time       *nlp.Clock
	Intent     intent.Intent
	Confidence float64
}

// analyze runs extraction and classification over a normalized
// utterance. Low-confidence classification falls through to the keyword
// rules.
func (r *Responder) analyze(norm string) Analysis {
	a := Analysis{Raw: norm}
	a.Stations = nlp.Extract(norm, r.Registry)
	if t, ok := nlp.ExtractTime(norm); ok {
		a.Time = &t
	}
	a.Intent, a.Confidence = r.Classifier.Classify(norm)
	if a.Intent == intent.Unknown {
		a.Intent = intent.KeywordIntent(norm)
	}
	return a
}

// Respond runs one chat turn and returns the answer plus the session ID
// (freshly issued when the given one is blank).
func (r *Responder) Respond(utterance, sessionID string) (string, string) {
	ctx, sid := r.Sessions.Get(sessionID)

	if lang := nlp.DetectLanguage(utterance); lang != nlp.English {
		log.Printf("session %s: detected %s query", sid, lang)
	}
	norm := nlp.Normalize(utterance)

	a := r.analyze(norm)

	if intent.NewTopic(ctx.LastIntent, a.Intent) {
		ctx.ResetJourney()
	}

	a.Stations, a.Time = session.Resolve(norm, a.Stations, a.Time, ctx)

	// A turn that names stations but no recognizable topic is a route
	// query.
	if a.Intent == intent.Unknown && len(a.Stations) > 0 {
		a.Intent = intent.Route
	}

	answer := r.answer(norm, a.Intent, a.Stations, a.Time)
	ctx.Update(a.Stations, a.Time, a.Intent)
	return answer, sid
}

func (r *Responder) answer(query string, in intent.Intent, stations []*station.Station, when *nlp.Clock) string {
	switch in {
	case intent.Route:
		return r.answerRoute(query, stations, when)
	case intent.Fare:
		return r.answerFare(stations)
	case intent.Concession:
		return formatRuleSection("Concessions", r.ruleText().Concession)
	case intent.Luggage:
		return formatRuleSection("Luggage Rules", r.ruleText().Luggage)
	case intent.Pass:
		return formatRuleSection("Season Passes", r.ruleText().Pass)
	case intent.Platform:
		return answerPlatform(stations)
	case intent.PeakHours:
		return formatPeakHours()
	case intent.ACTrain:
		return r.answerAC(query)
	case intent.BusConnection:
		return r.answerBus(query, stations)
	case intent.Metro:
		return formatMetro()
	case intent.Review:
		return r.answerReview(query, stations)
	default:
		return helpText
	}
}

func (r *Responder) answerRoute(query string, stations []*station.Station, when *nlp.Clock) string {
	switch len(stations) {
	case 0:
		return promptNoStations
	case 1:
		return promptOneStation(stations[0].Name)
	}
	src, dst := stations[0], stations[1]

	plan, err := r.Router.Route(src, dst)
	if err != nil {
		return "Sorry, I could not find a route between " + src.Name + " and " + dst.Name + "."
	}
	if len(plan.Legs) == 0 {
		return formatPlan(src, dst, plan)
	}

	var b strings.Builder
	b.WriteString(formatPlan(src, dst, plan))

	if r.Schedule == nil {
		b.WriteString("\n\n_Live timetable data is not available right now._")
		return b.String()
	}

	all := wantsFullDay(query)
	trains, fellBack := r.Schedule.Trains(src.Name, dst.Name, when, all)
	b.WriteString(formatTrains(trains, when, fellBack))
	return b.String()
}

func (r *Responder) answerFare(stations []*station.Station) string {
	switch len(stations) {
	case 0:
		return promptNoStations
	case 1:
		return promptOneStation(stations[0].Name)
	}
	f := fare.Calculate(stations[0].Name, stations[1].Name)
	if f == nil {
		return "Fare information for " + stations[0].Name + " to " + stations[1].Name +
			" is not available. Please check the UTS app for exact prices."
	}
	return formatFare(f)
}

func (r *Responder) answerAC(query string) string {
	if r.Schedule == nil {
		return "AC train information is not available right now."
	}
	var line station.Line
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "western"):
		line = station.Western
	case strings.Contains(lower, "central"):
		line = station.Central
	case strings.Contains(lower, "harbour"):
		line = station.Harbour
	}
	return formatACTrains(r.Schedule.ACTrains(line), line)
}

// ruleText never returns nil, so a responder wired without rule data
// degrades instead of panicking.
func (r *Responder) ruleText() *rules.Rules {
	if r.Rules == nil {
		return &rules.Rules{}
	}
	return r.Rules
}

func (r *Responder) answerBus(query string, stations []*station.Station) string {
	area, ok := bus.Find(query)
	if !ok {
		if stationinfo.OnMetro(query) {
			return formatMetro()
		}
		if len(stations) > 0 {
			return stations[0].Name + " has its own railway station, no bus connection needed."
		}
		return "Tell me the area you are starting from (for example Powai, BKC or Colaba) and I will find bus connections to the nearest station."
	}
	return formatBusArea(area)
}

// ratingPattern picks a 1-5 rating out of a review submission, written
// as "4/5" or "4 stars".
var ratingPattern = regexp.MustCompile(`\b([1-5])\s*(?:/\s*5|star)`)

func (r *Responder) answerReview(query string, stations []*station.Station) string {
	if r.Reviews == nil {
		return "Reviews are not available right now."
	}
	subject := ""
	if len(stations) > 0 {
		subject = stations[0].Name
	} else {
		lower := strings.ToLower(query)
		for _, l := range []string{"western", "central", "harbour"} {
			if strings.Contains(lower, l) {
				subject = l + " line"
				break
			}
		}
	}
	if subject == "" {
		return "Which station or line would you like reviews for?"
	}

	if m := ratingPattern.FindStringSubmatch(query); m != nil {
		rating := int(m[1][0] - '0')
		comment := ""
		if idx := strings.Index(query, ":"); idx >= 0 {
			comment = strings.TrimSpace(query[idx+1:])
		}
		if _, err := r.Reviews.Add(subject, rating, comment); err != nil {
			log.Printf("review submission failed: %v", err)
			return "Sorry, I could not save that review."
		}
		return fmt.Sprintf("Thanks, your %d/5 rating for %s is recorded.", rating, subject)
	}

	avg, n, err := r.Reviews.AverageRating(subject)
	if err != nil {
		log.Printf("review lookup failed: %v", err)
		return "Reviews are not available right now."
	}
	if n == 0 {
		return "No reviews yet for " + subject + "."
	}
	recent, err := r.Reviews.For(subject)
	if err != nil {
		log.Printf("review lookup failed: %v", err)
		return "Reviews are not available right now."
	}
	return formatReviews(subject, avg, n, recent)
}

func answerPlatform(stations []*station.Station) string {
	if len(stations) == 0 {
		return "Which station's platforms do you want to know about?"
	}
	return formatPlatforms(stations[0].Name)
}

// wantsFullDay reports whether the user asked for the whole timetable
// rather than the next departures.
func wantsFullDay(query string) bool {
	lower := strings.ToLower(query)
	for _, w := range []string{"all trains", "timetable", "full schedule", "whole day"} {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
