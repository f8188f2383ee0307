package schedule

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mumbailocal/railbot/nlp"
	"github.com/mumbailocal/railbot/station"
)

// Row is one scheduled departure.
type Row struct {
	Line        station.Line
	Departure   nlp.Clock
	Source      string
	Destination string
	Class       string // SLOW, FAST, AC SLOW, AC FAST
}

// IsAC reports whether the service runs air-conditioned stock.
func (r Row) IsAC() bool { return strings.HasPrefix(strings.ToUpper(r.Class), "AC") }

// Table is the in-memory timetable.
type Table struct {
	rows []Row
}

// Load reads the timetable CSV
// (line,departure,source,destination,class).
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses timetable CSV from a reader.
func Read(r io.Reader) (*Table, error) {
	rec, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	t := &Table{}
	if len(rec) == 0 {
		return t, nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	lineIdx := idx("line")
	depIdx := idx("departure")
	srcIdx := idx("source")
	dstIdx := idx("destination")
	classIdx := idx("class")
	for _, row := range rec[1:] {
		if lineIdx < 0 || depIdx < 0 || srcIdx < 0 || dstIdx < 0 {
			continue
		}
		dep, err := nlp.ParseClock(row[depIdx])
		if err != nil {
			continue
		}
		class := ""
		if classIdx >= 0 && classIdx < len(row) {
			class = strings.TrimSpace(row[classIdx])
		}
		t.rows = append(t.rows, Row{
			Line:        station.Line(strings.ToLower(strings.TrimSpace(row[lineIdx]))),
			Departure:   dep,
			Source:      strings.TrimSpace(row[srcIdx]),
			Destination: strings.TrimSpace(row[dstIdx]),
			Class:       class,
		})
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i].Departure.Minutes() < t.rows[j].Departure.Minutes()
	})
	return t, nil
}

// Len reports the number of scheduled departures.
func (t *Table) Len() int { return len(t.rows) }

// matchStation tolerates naming variants ("CSMT" vs "Mumbai CSMT") by
// matching substrings in either direction, space-insensitively.
func matchStation(rowName, query string) bool {
	a := strings.ReplaceAll(strings.ToLower(rowName), " ", "")
	b := strings.ReplaceAll(strings.ToLower(query), " ", "")
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Trains lists departures from src to dst ordered by time. With a
// cutoff, departures strictly before it are dropped. If that leaves
// nothing, the full day's listing is returned and the second result
// reports that the time filter was dropped. all=true skips time
// filtering entirely.
func (t *Table) Trains(src, dst string, after *nlp.Clock, all bool) ([]Row, bool) {
	var day []Row
	for _, row := range t.rows {
		if matchStation(row.Source, src) && matchStation(row.Destination, dst) {
			day = append(day, row)
		}
	}
	if all || after == nil || len(day) == 0 {
		return day, false
	}
	var windowed []Row
	for _, row := range day {
		if !row.Departure.Before(*after) {
			windowed = append(windowed, row)
		}
	}
	if len(windowed) == 0 {
		return day, true
	}
	return windowed, false
}

// ACTrains lists air-conditioned departures, optionally restricted to
// one line.
func (t *Table) ACTrains(line station.Line) []Row {
	var out []Row
	for _, row := range t.rows {
		if !row.IsAC() {
			continue
		}
		if line != "" && row.Line != line {
			continue
		}
		out = append(out, row)
	}
	return out
}
