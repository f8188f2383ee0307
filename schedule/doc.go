// Package schedule serves time-windowed lookups over the static train
// timetable. The timetable is loaded once from CSV at startup and never
// mutated; a missing file degrades schedule answers while everything
// else keeps working.
package schedule
