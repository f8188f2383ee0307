package router

import (
	"errors"

	"github.com/mumbailocal/railbot/station"
)

// ErrNoRoute is returned when no interchange mapping connects the two
// stations' lines.
var ErrNoRoute = errors.New("no known route")

// Known real-world junction stations, keyed by unordered line pair.
var junctions = map[[2]station.Line]string{
	pairKey(station.Western, station.Central): "Dadar",
	pairKey(station.Central, station.Harbour): "Kurla",
	pairKey(station.Western, station.Harbour): "Bandra",
}

func pairKey(a, b station.Line) [2]station.Line {
	if b < a {
		a, b = b, a
	}
	return [2]station.Line{a, b}
}

// Leg is one ride on a single line. Direction is "up" (toward the city
// terminus), "down", or empty when an endpoint sits on a branch without
// a corridor ordinal.
type Leg struct {
	From      *station.Station
	To        *station.Station
	Line      station.Line
	Direction string
}

// Plan is a resolved route: one leg for a direct journey, two legs with
// an interchange otherwise.
type Plan struct {
	Legs        []Leg
	Interchange *station.Station
}

// Direct reports whether the plan needs no line change.
func (p *Plan) Direct() bool { return p.Interchange == nil }

// Router answers line and interchange queries over the registry.
type Router struct {
	reg *station.Registry
}

func New(reg *station.Registry) *Router { return &Router{reg: reg} }

// SharedLine returns a line both stations belong to, if any. When more
// than one line qualifies, corridor declaration order decides.
func (r *Router) SharedLine(a, b *station.Station) (station.Line, bool) {
	for _, l := range []station.Line{station.Western, station.Central, station.Harbour} {
		if a.OnLine(l) && b.OnLine(l) {
			return l, true
		}
	}
	return "", false
}

// Interchange returns the junction station for a line pair, if one is
// mapped.
func (r *Router) Interchange(a, b station.Line) (*station.Station, bool) {
	name, ok := junctions[pairKey(a, b)]
	if !ok {
		return nil, false
	}
	st, ok := r.reg.Get(name)
	return st, ok
}

// direction derives up/down from corridor ordinals; empty when either
// endpoint lacks an ordinal on the line.
func direction(from, to *station.Station, l station.Line) string {
	fo, ok1 := from.OrdinalOn(l)
	to2, ok2 := to.OrdinalOn(l)
	if !ok1 || !ok2 {
		return ""
	}
	if to2 < fo {
		return "up"
	}
	return "down"
}

// Route resolves a plan between two stations. If either endpoint is
// itself the junction for the line pair, the plan collapses to a single
// leg.
func (r *Router) Route(src, dst *station.Station) (*Plan, error) {
	if src == dst {
		return &Plan{}, nil
	}

	if l, ok := r.SharedLine(src, dst); ok {
		return &Plan{Legs: []Leg{{From: src, To: dst, Line: l, Direction: direction(src, dst, l)}}}, nil
	}

	for _, srcLine := range linesOf(src) {
		for _, dstLine := range linesOf(dst) {
			junction, ok := r.Interchange(srcLine, dstLine)
			if !ok {
				continue
			}
			if junction == src {
				return &Plan{Legs: []Leg{{From: src, To: dst, Line: dstLine, Direction: direction(src, dst, dstLine)}}}, nil
			}
			if junction == dst {
				return &Plan{Legs: []Leg{{From: src, To: dst, Line: srcLine, Direction: direction(src, dst, srcLine)}}}, nil
			}
			return &Plan{
				Legs: []Leg{
					{From: src, To: junction, Line: srcLine, Direction: direction(src, junction, srcLine)},
					{From: junction, To: dst, Line: dstLine, Direction: direction(junction, dst, dstLine)},
				},
				Interchange: junction,
			}, nil
		}
	}
	return nil, ErrNoRoute
}

func linesOf(s *station.Station) []station.Line {
	var out []station.Line
	for _, l := range []station.Line{station.Western, station.Central, station.Harbour} {
		if s.OnLine(l) {
			out = append(out, l)
		}
	}
	return out
}
