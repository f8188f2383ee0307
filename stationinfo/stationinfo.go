package stationinfo

import "strings"

// DirectionPlatforms maps a heading to the platforms serving it.
// Directions keeps declaration order so responses render stably.
type DirectionPlatforms struct {
	Direction string
	Platforms string
}

// Platforms describes the platform layout at one station.
type Platforms struct {
	Station    string
	Total      int
	Directions []DirectionPlatforms
	Notes      string
}

var platformInfo = []Platforms{
	{
		Station: "Churchgate", Total: 4,
		Directions: []DirectionPlatforms{
			{"Virar/Borivali", "Platform 1, 2, 3, 4"},
		},
		Notes: "Terminus station, all trains start here",
	},
	{
		Station: "Mumbai Central", Total: 4,
		Directions: []DirectionPlatforms{
			{"Virar/Borivali", "Platform 1, 2"},
			{"Churchgate", "Platform 3, 4"},
		},
	},
	{
		Station: "Dadar", Total: 8,
		Directions: []DirectionPlatforms{
			{"Virar/Borivali (Western)", "Platform 1, 2"},
			{"Churchgate (Western)", "Platform 3, 4"},
			{"Thane/Kalyan (Central)", "Platform 5, 6"},
			{"CSMT (Central)", "Platform 7, 8"},
		},
		Notes: "Major interchange between the Western and Central lines",
	},
	{
		Station: "Bandra", Total: 5,
		Directions: []DirectionPlatforms{
			{"Virar/Borivali", "Platform 1, 2"},
			{"Churchgate", "Platform 3, 4, 5"},
		},
		Notes: "Harbour line trains on Platform 5",
	},
	{
		Station: "Andheri", Total: 4,
		Directions: []DirectionPlatforms{
			{"Virar/Borivali", "Platform 1, 2"},
			{"Churchgate", "Platform 3, 4"},
		},
		Notes: "Metro Line 1 connects here (East side)",
	},
	{
		Station: "Borivali", Total: 4,
		Directions: []DirectionPlatforms{
			{"Virar", "Platform 1, 2"},
			{"Churchgate", "Platform 3, 4"},
		},
	},
	{
		Station: "CSMT", Total: 18,
		Directions: []DirectionPlatforms{
			{"Thane/Kalyan (Central)", "Platform 1-7"},
			{"Panvel (Harbour)", "Platform 8-18"},
		},
		Notes: "Terminus station, all trains start here",
	},
	{
		Station: "Kurla", Total: 6,
		Directions: []DirectionPlatforms{
			{"Thane/Kalyan", "Platform 1, 2"},
			{"CSMT", "Platform 3, 4"},
			{"Harbour Line", "Platform 5, 6"},
		},
		Notes: "Major interchange between the Central and Harbour lines",
	},
	{
		Station: "Ghatkopar", Total: 4,
		Directions: []DirectionPlatforms{
			{"Thane/Kalyan", "Platform 1, 2"},
			{"CSMT", "Platform 3, 4"},
		},
		Notes: "Metro Line 1 connects here",
	},
	{
		Station: "Thane", Total: 6,
		Directions: []DirectionPlatforms{
			{"Kalyan/Kasara/Karjat", "Platform 1, 2, 3"},
			{"CSMT/Dadar", "Platform 4, 5, 6"},
		},
		Notes: "Trans-Harbour trains to Vashi/Panvel available",
	},
	{
		Station: "Kalyan", Total: 8,
		Directions: []DirectionPlatforms{
			{"Kasara", "Platform 1, 2"},
			{"Karjat", "Platform 3, 4"},
			{"CSMT/Dadar", "Platform 5, 6, 7, 8"},
		},
		Notes: "Junction where trains split to Kasara and Karjat",
	},
	{
		Station: "Vashi", Total: 4,
		Directions: []DirectionPlatforms{
			{"Panvel/Belapur", "Platform 1, 2"},
			{"CSMT/Thane", "Platform 3, 4"},
		},
	},
	{
		Station: "Panvel", Total: 4,
		Directions: []DirectionPlatforms{
			{"CSMT", "Platform 1, 2"},
			{"Thane (Trans-Harbour)", "Platform 3, 4"},
		},
		Notes: "Terminus station",
	},
}

// PlatformsFor returns the platform layout for a station by canonical
// name.
func PlatformsFor(station string) (Platforms, bool) {
	for _, p := range platformInfo {
		if strings.EqualFold(p.Station, station) {
			return p, true
		}
	}
	return Platforms{}, false
}

// PeakWindow describes crowd levels during one part of the day.
type PeakWindow struct {
	Name  string
	Time  string
	Crowd string
	Tips  []string
}

var peakHours = []PeakWindow{
	{
		Name: "Morning Rush", Time: "8:00 AM - 10:30 AM", Crowd: "Very High",
		Tips: []string{
			"Trains every 3-4 mins on main lines",
			"First class less crowded but expensive",
			"Ladies coach recommended for women",
			"Avoid Dadar, Kurla, Andheri if possible",
		},
	},
	{
		Name: "Evening Rush", Time: "5:30 PM - 8:30 PM", Crowd: "Very High",
		Tips: []string{
			"Reverse direction less crowded",
			"AC locals have more space",
			"Fast trains extremely packed",
			"Consider waiting for next train",
		},
	},
	{
		Name: "Off Peak", Time: "11:00 AM - 4:00 PM", Crowd: "Low to Medium",
		Tips: []string{
			"Best time to travel comfortably",
			"Seats usually available",
			"Less frequency but less crowd",
		},
	},
	{
		Name: "Night", Time: "9:00 PM - 11:00 PM", Crowd: "Low",
		Tips: []string{
			"Fewer trains, check last train timing",
			"Last trains usually crowded",
			"Western last train: ~11:30 PM from Churchgate",
		},
	},
}

// PeakHours returns the crowd windows in chronological order.
func PeakHours() []PeakWindow { return peakHours }

// Metro describes the Metro Line 1 corridor and its suburban
// interchanges.
type Metro struct {
	Name        string
	Stations    []string
	Interchange map[string]string
	Timings     string
	Frequency   string
	Fare        string
}

var metroLine1 = Metro{
	Name: "Versova-Andheri-Ghatkopar (Blue Line)",
	Stations: []string{
		"Versova", "D N Nagar", "Azad Nagar", "Andheri",
		"Western Express Highway", "Chakala", "Airport Road",
		"Marol Naka", "Saki Naka", "Asalpha", "Jagruti Nagar", "Ghatkopar",
	},
	Interchange: map[string]string{
		"Andheri":   "Western Line",
		"Ghatkopar": "Central Line",
	},
	Timings:   "5:30 AM - 11:00 PM",
	Frequency: "4-8 mins",
	Fare:      "Rs 10 - Rs 40",
}

// MetroLine1 returns the Metro Line 1 reference data.
func MetroLine1() Metro { return metroLine1 }

// OnMetro reports whether the text names a Metro Line 1 station.
func OnMetro(text string) bool {
	lower := strings.ToLower(text)
	for _, s := range metroLine1.Stations {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
