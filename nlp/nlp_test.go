package nlp

import (
	"testing"

	"github.com/mumbailocal/railbot/station"
)

func names(stations []*station.Station) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.Name
	}
	return out
}

func TestExtract_OrderPreserved(t *testing.T) {
	reg := station.NewRegistry()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "simple pair",
			query: "Dadar to Thane",
			want:  []string{"Dadar", "Thane"},
		},
		{
			name:  "reversed pair",
			query: "Thane to Dadar",
			want:  []string{"Thane", "Dadar"},
		},
		{
			name:  "multi-word station matched as a span",
			query: "trains from Grant Road to Marine Lines",
			want:  []string{"Grant Road", "Marine Lines"},
		},
		{
			name:  "alias in query",
			query: "Panvel to VT",
			want:  []string{"Panvel", "CSMT"},
		},
		{
			name:  "fuzzy misspelling second endpoint",
			query: "Dadar to Thanee after 6",
			want:  []string{"Dadar", "Thane"},
		},
		{
			name:  "duplicate mention deduplicated",
			query: "Dadar to Dadar",
			want:  []string{"Dadar"},
		},
		{
			name:  "no stations",
			query: "what are the luggage rules",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Extract(tt.query, reg))
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract(%q)[%d] = %s, want %s", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtract_AllPairsOrdered(t *testing.T) {
	reg := station.NewRegistry()
	pairs := [][2]string{
		{"Churchgate", "Borivali"},
		{"Virar", "Churchgate"},
		{"Panvel", "CSMT"},
		{"Andheri", "Dadar"},
		{"Vashi", "Kurla"},
		{"Nalla Sopara", "Grant Road"},
	}
	for _, p := range pairs {
		got := names(Extract(p[0]+" to "+p[1], reg))
		if len(got) != 2 || got[0] != p[0] || got[1] != p[1] {
			t.Errorf("Extract(%q to %q) = %v, order not preserved", p[0], p[1], got)
		}
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Clock
		found bool
	}{
		{name: "natural evening", query: "trains in the evening", want: Clock{17, 30}, found: true},
		{name: "longest expression wins", query: "any late night trains", want: Clock{22, 30}, found: true},
		{name: "rush hour", query: "during rush hour please", want: Clock{8, 30}, found: true},
		{name: "explicit pm", query: "after 6 pm", want: Clock{18, 0}, found: true},
		{name: "explicit pm with minutes", query: "at 3:30 pm", want: Clock{15, 30}, found: true},
		{name: "single letter marker", query: "trains at 5p", want: Clock{17, 0}, found: true},
		{name: "24 hour", query: "departures after 14:00", want: Clock{14, 0}, found: true},
		{name: "12 am is midnight", query: "at 12 am", want: Clock{0, 0}, found: true},
		{name: "bare number defaults pm", query: "around 5", want: Clock{17, 0}, found: true},
		{name: "bare number keeps am on early cue", query: "after 5 early", want: Clock{5, 0}, found: true},
		{name: "nothing", query: "dadar to thane", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTime(tt.query)
			if ok != tt.found {
				t.Fatalf("ExtractTime(%q) found=%v, want %v", tt.query, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractTime(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "hindi fare query", query: "dadar se thane kitna kiraya", want: "dadar from thane how much fare"},
		{name: "english untouched", query: "dadar to thane", want: "dadar to thane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.query); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		query string
		want  Language
	}{
		{"dadar se thane kitna kiraya", Hindi},
		{"thane pasun dadar kiti bhada", Marathi},
		{"next train from dadar", English},
		{"train se station", English}, // single loan word is not enough
	}
	for _, tt := range tests {
		if got := DetectLanguage(tt.query); got != tt.want {
			t.Errorf("DetectLanguage(%q) = %s, want %s", tt.query, got, tt.want)
		}
	}
}
