package station

// Line identifies one of the three suburban corridors.
type Line string

const (
	Western Line = "western"
	Central Line = "central"
	Harbour Line = "harbour"
)

// Station is a canonical station. Lines is the membership set; Ordinal
// carries the position within each corridor the station sits on. A
// branch-service membership (Bandra on the Harbour line) has no ordinal.
type Station struct {
	Name    string
	Lines   map[Line]bool
	Ordinal map[Line]int
}

// OnLine reports whether the station belongs to the given line.
func (s *Station) OnLine(l Line) bool { return s.Lines[l] }

// IsInterchange reports whether the station belongs to more than one
// line and can be used as a transfer point.
func (s *Station) IsInterchange() bool { return len(s.Lines) >= 2 }

// OrdinalOn returns the station's position on a line, if it has one.
func (s *Station) OrdinalOn(l Line) (int, bool) {
	o, ok := s.Ordinal[l]
	return o, ok
}
