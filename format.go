package railbot

import (
	"fmt"
	"strings"

	"github.com/mumbailocal/railbot/bus"
	"github.com/mumbailocal/railbot/fare"
	"github.com/mumbailocal/railbot/nlp"
	"github.com/mumbailocal/railbot/reviews"
	"github.com/mumbailocal/railbot/router"
	"github.com/mumbailocal/railbot/schedule"
	"github.com/mumbailocal/railbot/station"
	"github.com/mumbailocal/railbot/stationinfo"
)

const maxListedTrains = 5

const promptNoStations = "I could not find a station in your message. " +
	"Try something like \"Dadar to Thane\" or \"trains from Churchgate to Borivali after 6 pm\"."

const helpText = "I can help with train timings, routes, fares, platforms, " +
	"peak hours, AC locals, bus connections and railway rules. " +
	"Try \"next train from Dadar to Thane\" or \"student concession rules\"."

func promptOneStation(name string) string {
	return "I found **" + name + "** but need both ends of the journey. " +
		"Where are you travelling to or from?"
}

func lineTitle(l station.Line) string {
	if l == "" {
		return ""
	}
	s := string(l)
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatPlan(src, dst *station.Station, plan *router.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s to %s**\n", src.Name, dst.Name)

	if len(plan.Legs) == 0 {
		b.WriteString("You are already at " + src.Name + ".")
		return b.String()
	}

	if plan.Direct() {
		leg := plan.Legs[0]
		fmt.Fprintf(&b, "Direct on the %s line", lineTitle(leg.Line))
		if leg.Direction != "" {
			fmt.Fprintf(&b, " (%s direction)", leg.Direction)
		}
		b.WriteString(".")
		return b.String()
	}

	fmt.Fprintf(&b, "Change at **%s**:\n", plan.Interchange.Name)
	for i, leg := range plan.Legs {
		fmt.Fprintf(&b, "%d. %s to %s on the %s line", i+1, leg.From.Name, leg.To.Name, lineTitle(leg.Line))
		if leg.Direction != "" {
			fmt.Fprintf(&b, " (%s)", leg.Direction)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTrains(trains []schedule.Row, when *nlp.Clock, fellBack bool) string {
	if len(trains) == 0 {
		return "\n\nNo scheduled services found for this pair."
	}

	var b strings.Builder
	b.WriteString("\n\n")
	if fellBack && when != nil {
		fmt.Fprintf(&b, "No departures after %s, showing the full day instead:\n", when)
	} else if when != nil {
		fmt.Fprintf(&b, "Departures after %s:\n", when)
	} else {
		b.WriteString("Departures:\n")
	}
	for i, row := range trains {
		if i == maxListedTrains {
			fmt.Fprintf(&b, "...and %d more\n", len(trains)-maxListedTrains)
			break
		}
		fmt.Fprintf(&b, "- %s  %s (%s line)\n", row.Departure, row.Class, lineTitle(row.Line))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatFare(f *fare.Fare) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Fare: %s to %s**\n", f.From, f.To)
	fmt.Fprintf(&b, "Distance: %.1f km\n\n", f.DistanceKM)
	b.WriteString("| Class | Single | Monthly Pass |\n")
	b.WriteString("|-------|--------|--------------|\n")
	fmt.Fprintf(&b, "| Second Class | Rs %d | Rs %d |\n", f.Single.Second, f.Monthly.Second)
	fmt.Fprintf(&b, "| First Class | Rs %d | Rs %d |\n", f.Single.First, f.Monthly.First)
	fmt.Fprintf(&b, "| AC Local | Rs %d | Rs %d |\n", f.Single.AC, f.Monthly.AC)
	b.WriteString("\n_Fares are approximate. Check the UTS app for exact prices._")
	return b.String()
}

func formatRuleSection(title string, lines []string) string {
	if len(lines) == 0 {
		return title + " information is not available right now."
	}
	var b strings.Builder
	b.WriteString("**" + title + "**\n")
	for _, line := range lines {
		b.WriteString("- " + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPlatforms(name string) string {
	p, ok := stationinfo.PlatformsFor(name)
	if !ok {
		return "I do not have platform details for " + name + " yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**%s Station - Platforms**\n", p.Station)
	fmt.Fprintf(&b, "Total platforms: %d\n\n", p.Total)
	for _, d := range p.Directions {
		fmt.Fprintf(&b, "**%s**: %s\n", d.Direction, d.Platforms)
	}
	if p.Notes != "" {
		b.WriteString("\n_" + p.Notes + "_")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatPeakHours() string {
	var b strings.Builder
	b.WriteString("**Peak Hours - Mumbai Local**\n")
	for _, w := range stationinfo.PeakHours() {
		fmt.Fprintf(&b, "\n**%s** (%s), crowd: %s\n", w.Name, w.Time, w.Crowd)
		for i, tip := range w.Tips {
			if i == 2 {
				break
			}
			b.WriteString("- " + tip + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatACTrains(trains []schedule.Row, line station.Line) string {
	if len(trains) == 0 {
		if line != "" {
			return "No AC locals found on the " + lineTitle(line) + " line in the timetable."
		}
		return "No AC locals found in the timetable."
	}
	var b strings.Builder
	if line != "" {
		fmt.Fprintf(&b, "**AC locals on the %s line**\n", lineTitle(line))
	} else {
		b.WriteString("**AC locals**\n")
	}
	for i, row := range trains {
		if i == maxListedTrains {
			fmt.Fprintf(&b, "...and %d more\n", len(trains)-maxListedTrains)
			break
		}
		fmt.Fprintf(&b, "- %s  %s to %s (%s)\n", row.Departure, row.Source, row.Destination, row.Class)
	}
	b.WriteString("\n_AC locals need a separate AC ticket or pass._")
	return b.String()
}

func formatMetro() string {
	m := stationinfo.MetroLine1()
	var b strings.Builder
	fmt.Fprintf(&b, "**Metro Line 1** - %s\n\n", m.Name)
	fmt.Fprintf(&b, "**Stations**: %s to %s\n", m.Stations[0], m.Stations[len(m.Stations)-1])
	fmt.Fprintf(&b, "**Timings**: %s\n", m.Timings)
	fmt.Fprintf(&b, "**Frequency**: every %s\n", m.Frequency)
	fmt.Fprintf(&b, "**Fare**: %s\n\n", m.Fare)
	b.WriteString("**Connects to local trains at:**\n")
	for _, st := range []string{"Andheri", "Ghatkopar"} {
		fmt.Fprintf(&b, "- %s (%s)\n", st, m.Interchange[st])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatBusArea(a bus.Area) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Getting to/from %s**\n", a.Name)
	for _, c := range a.Connections {
		fmt.Fprintf(&b, "\n**%s** (%s line)\n", c.Station, c.Line)
		fmt.Fprintf(&b, "- Buses: %s\n", strings.Join(c.Buses, ", "))
		fmt.Fprintf(&b, "- Time: %s\n", c.TravelTime)
		if c.Notes != "" {
			b.WriteString("- " + c.Notes + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatReviews(subject string, avg float64, n int, recent []reviews.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Reviews for %s**\n", subject)
	fmt.Fprintf(&b, "Average rating: %.1f/5 from %d reviews\n", avg, n)
	if label, pos, neg := reviews.SentimentSummary(recent); pos+neg > 0 {
		fmt.Fprintf(&b, "Sentiment: %s (%d positive / %d negative)\n", label, pos, neg)
	}
	for i, r := range recent {
		if i == 3 {
			break
		}
		if r.Comment != "" {
			fmt.Fprintf(&b, "- %d/5: %s\n", r.Rating, r.Comment)
		} else {
			fmt.Fprintf(&b, "- %d/5\n", r.Rating)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
