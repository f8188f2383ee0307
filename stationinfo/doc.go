// Package stationinfo holds curated platform layouts, peak-hour
// guidance and Metro Line 1 connectivity for the major stations. The
// data is static reference material, not derived from the timetable.
package stationinfo
