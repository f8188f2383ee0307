package railbot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mumbailocal/railbot/intent"
	"github.com/mumbailocal/railbot/reviews"
	"github.com/mumbailocal/railbot/router"
	"github.com/mumbailocal/railbot/rules"
	"github.com/mumbailocal/railbot/schedule"
	"github.com/mumbailocal/railbot/session"
	"github.com/mumbailocal/railbot/station"
)

const testCSV = `line,departure,source,destination,class
central,08:10,Dadar,Thane,SLOW
central,18:30,Dadar,Thane,FAST
central,09:00,Dadar,Thane,AC FAST
western,07:20,Churchgate,Borivali,SLOW
western,19:05,Churchgate,Borivali,AC SLOW
`

// testResponder wires a responder from in-memory data. The classifier
// has no model or phrase file, so intent resolution exercises the
// keyword fallback path deterministically.
func testResponder(t *testing.T) *Responder {
	t.Helper()
	reg := station.NewRegistry()
	tbl, err := schedule.Read(strings.NewReader(testCSV))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	sessions, err := session.NewStore(16)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	return &Responder{
		Registry:   reg,
		Router:     router.New(reg),
		Classifier: intent.NewClassifier("", ""),
		Schedule:   tbl,
		Rules: &rules.Rules{
			Concession: []string{"Students get 50% off season tickets"},
		},
		Sessions: sessions,
	}
}

func TestRespond_DirectRoute(t *testing.T) {
	r := testResponder(t)

	reply, sid := r.Respond("next train from Dadar to Thane", "")
	if sid == "" {
		t.Fatal("blank session should be issued an ID")
	}
	if !strings.Contains(reply, "Dadar to Thane") {
		t.Errorf("reply missing route header: %q", reply)
	}
	if !strings.Contains(reply, "Central line") {
		t.Errorf("reply missing line: %q", reply)
	}
	if !strings.Contains(reply, "08:10") {
		t.Errorf("reply missing departures: %q", reply)
	}
}

func TestRespond_ContextCarryover(t *testing.T) {
	r := testResponder(t)

	_, sid := r.Respond("Dadar to Thane", "")
	reply, sid2 := r.Respond("after 6 pm?", sid)
	if sid2 != sid {
		t.Fatalf("session changed: %s vs %s", sid, sid2)
	}
	if !strings.Contains(reply, "Dadar to Thane") {
		t.Errorf("context not carried over: %q", reply)
	}
	if !strings.Contains(reply, "after 18:00") {
		t.Errorf("time filter missing: %q", reply)
	}
	if !strings.Contains(reply, "18:30") || strings.Contains(reply, "08:10") {
		t.Errorf("departures not filtered: %q", reply)
	}
}

func TestRespond_SourceOverride(t *testing.T) {
	r := testResponder(t)

	_, sid := r.Respond("Dadar to Thane", "")
	reply, _ := r.Respond("from Andheri instead", sid)
	if !strings.Contains(reply, "Andheri to Thane") {
		t.Errorf("source not overridden: %q", reply)
	}
	// Andheri is Western, Thane is Central; the plan changes at Dadar.
	if !strings.Contains(reply, "Dadar") {
		t.Errorf("interchange missing: %q", reply)
	}
}

func TestRespond_Prompts(t *testing.T) {
	r := testResponder(t)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "no stations", query: "train timing please", want: "could not find a station"},
		{name: "one station", query: "trains from Dadar", want: "need both ends"},
		{name: "gibberish", query: "hello there", want: "I can help"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, _ := r.Respond(tt.query, "")
			if !strings.Contains(reply, tt.want) {
				t.Errorf("reply = %q, want substring %q", reply, tt.want)
			}
		})
	}
}

func TestRespond_Fare(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("what is the fare from Dadar to Thane", "")
	if !strings.Contains(reply, "Fare: Dadar to Thane") {
		t.Fatalf("reply = %q", reply)
	}
	if !strings.Contains(reply, "Rs 15") || !strings.Contains(reply, "25.0 km") {
		t.Errorf("fare table wrong: %q", reply)
	}
}

func TestRespond_Rules(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("student concession rules", "")
	if !strings.Contains(reply, "50% off") {
		t.Errorf("concession text missing: %q", reply)
	}

	// Luggage text was not loaded; the answer degrades.
	reply, _ = r.Respond("luggage allowance in local trains", "")
	if !strings.Contains(reply, "not available") {
		t.Errorf("luggage should degrade: %q", reply)
	}
}

func TestRespond_NewTopicResetsJourney(t *testing.T) {
	r := testResponder(t)

	_, sid := r.Respond("Dadar to Thane", "")
	r.Respond("student concession rules", sid)

	// The journey was cleared on the topic switch; a bare follow-up cue
	// has nothing to reuse.
	reply, _ := r.Respond("what about timings", sid)
	if !strings.Contains(reply, "could not find a station") {
		t.Errorf("journey context should be gone: %q", reply)
	}
}

func TestRespond_Platform(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("which platform at Dadar", "")
	if !strings.Contains(reply, "Dadar Station - Platforms") {
		t.Errorf("reply = %q", reply)
	}
}

func TestRespond_ACTrains(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("ac local on western line", "")
	if !strings.Contains(reply, "AC locals on the Western line") {
		t.Fatalf("reply = %q", reply)
	}
	if !strings.Contains(reply, "19:05") || strings.Contains(reply, "09:00") {
		t.Errorf("wrong AC rows: %q", reply)
	}
}

func TestRespond_BusConnection(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("how to reach Powai by bus", "")
	if !strings.Contains(reply, "Powai / Hiranandani") {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(reply, "Kanjurmarg") {
		t.Errorf("nearest station missing: %q", reply)
	}
}

func TestRespond_HindiQuery(t *testing.T) {
	r := testResponder(t)

	// "dadar se thane tak kitna kiraya" normalizes to English keywords
	// and resolves as a fare query.
	reply, _ := r.Respond("dadar se thane tak kitna kiraya hai", "")
	if !strings.Contains(reply, "Fare: Dadar to Thane") {
		t.Errorf("reply = %q", reply)
	}
}

func TestRespond_ReviewsUnavailable(t *testing.T) {
	r := testResponder(t)

	reply, _ := r.Respond("reviews for Dadar station", "")
	if !strings.Contains(reply, "not available") {
		t.Errorf("reviews should degrade without a store: %q", reply)
	}
}

func TestRespond_NoRulesLoaded(t *testing.T) {
	r := testResponder(t)
	r.Rules = nil

	tests := []struct {
		name  string
		query string
	}{
		{name: "concession", query: "student concession rules"},
		{name: "luggage", query: "luggage allowance in local trains"},
		{name: "pass", query: "monthly pass details"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, _ := r.Respond(tt.query, "")
			if !strings.Contains(reply, "not available") {
				t.Errorf("reply = %q, want degraded answer", reply)
			}
		})
	}
}

func TestRespond_BusQuerySuggestsMetro(t *testing.T) {
	r := testResponder(t)

	// Saki Naka has no BEST listing and no railway station of its own,
	// but it sits on Metro Line 1.
	reply, _ := r.Respond("how do i reach saki naka", "")
	if !strings.Contains(reply, "Metro Line 1") {
		t.Errorf("metro suggestion missing: %q", reply)
	}
}

func TestRespond_ReviewSubmission(t *testing.T) {
	r := testResponder(t)
	store, err := reviews.Open(filepath.Join(t.TempDir(), "reviews.db"))
	if err != nil {
		t.Fatalf("reviews: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	r.Reviews = store

	reply, sid := r.Respond("add a review for Dadar 4/5 : very clean and reliable", "")
	if !strings.Contains(reply, "4/5 rating for Dadar is recorded") {
		t.Fatalf("submission not confirmed: %q", reply)
	}

	reply, _ = r.Respond("reviews for Dadar", sid)
	if !strings.Contains(reply, "Average rating: 4.0/5 from 1 reviews") {
		t.Errorf("stored review not reflected: %q", reply)
	}
	if !strings.Contains(reply, "very clean and reliable") {
		t.Errorf("comment missing: %q", reply)
	}
	if !strings.Contains(reply, "mostly positive") {
		t.Errorf("sentiment summary missing: %q", reply)
	}
}
