package intent

import "github.com/jbrukh/bayesian"

// Intent is one of the closed set of query categories.
type Intent string

const (
	Route         Intent = "route"
	Fare          Intent = "fare"
	Concession    Intent = "concession"
	Luggage       Intent = "luggage"
	Pass          Intent = "pass"
	Platform      Intent = "platform"
	PeakHours     Intent = "peak_hours"
	ACTrain       Intent = "ac_train"
	BusConnection Intent = "bus_connection"
	Metro         Intent = "metro"
	Review        Intent = "review"

	// Unknown is the fail-closed sentinel, never a trained class.
	Unknown Intent = "unknown"
)

// All lists the trained classes in a fixed order matching the
// classifier's class indices.
var All = []Intent{
	Route, Fare, Concession, Luggage, Pass, Platform,
	PeakHours, ACTrain, BusConnection, Metro, Review,
}

func classes() []bayesian.Class {
	out := make([]bayesian.Class, len(All))
	for i, in := range All {
		out[i] = bayesian.Class(in)
	}
	return out
}

// stationCentric intents carry source/destination slots; switching away
// from them to a rules topic starts a new conversation topic.
var stationCentric = map[Intent]bool{
	Route: true, Fare: true, Platform: true, ACTrain: true,
	BusConnection: true, Review: true,
}

// rulesTopic intents are about regulations, not journeys.
var rulesTopic = map[Intent]bool{
	Concession: true, Luggage: true, Pass: true,
}

// NewTopic reports whether moving from prev to next abandons the prior
// journey context.
func NewTopic(prev, next Intent) bool {
	return stationCentric[prev] && rulesTopic[next]
}
