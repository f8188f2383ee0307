package bus

import "strings"

// Connection is one bus link from an area to a railway station.
type Connection struct {
	Station    string
	Line       string
	Buses      []string
	TravelTime string
	Notes      string
}

// Area is a locality served by first/last mile buses rather than a
// station of its own.
type Area struct {
	Name        string
	Connections []Connection
	keywords    []string
}

var areas = []Area{
	{
		Name: "Powai / Hiranandani",
		Connections: []Connection{
			{Station: "Kanjurmarg", Line: "Central", Buses: []string{"602", "496"}, TravelTime: "15-20 min",
				Notes: "602 is the most frequent, every 10-15 min"},
			{Station: "Vikhroli", Line: "Central", Buses: []string{"418", "185"}, TravelTime: "15-20 min",
				Notes: "185 goes to Powai Vihar/Lake Homes side"},
		},
		keywords: []string{"powai", "hiranandani", "iit bombay", "iit", "chandivali", "powai lake"},
	},
	{
		Name: "Juhu",
		Connections: []Connection{
			{Station: "Vile Parle", Line: "Western", Buses: []string{"203", "231", "224"}, TravelTime: "15-20 min",
				Notes: "203 is most frequent, every 20 min"},
			{Station: "Andheri", Line: "Western", Buses: []string{"203", "A-203", "231"}, TravelTime: "20-25 min",
				Notes: "A-203 is AC bus"},
			{Station: "Santa Cruz", Line: "Western", Buses: []string{"28", "56", "A-56"}, TravelTime: "15-20 min",
				Notes: "A-56 is AC bus"},
		},
		keywords: []string{"juhu", "juhu beach", "juhu tara", "irla"},
	},
	{
		Name: "Bandra Kurla Complex (BKC)",
		Connections: []Connection{
			{Station: "Bandra", Line: "Western/Harbour", Buses: []string{"316", "317", "182", "183", "BKC-1", "BKC-2"}, TravelTime: "10-15 min",
				Notes: "BKC-1 and BKC-2 are AC buses. 183 is women special"},
			{Station: "Kurla", Line: "Central/Harbour", Buses: []string{"303", "310", "BKC-22"}, TravelTime: "10-15 min",
				Notes: "303 runs every 20 min"},
		},
		keywords: []string{"bkc", "bandra kurla", "diamond market", "mmrda", "platina"},
	},
	{
		Name: "Nariman Point / Cuffe Parade",
		Connections: []Connection{
			{Station: "Churchgate", Line: "Western", Buses: []string{"121", "137", "138", "106"}, TravelTime: "5-10 min",
				Notes: "121 runs every 15 min"},
			{Station: "Marine Lines", Line: "Western", Buses: []string{"121", "100", "A-108"}, TravelTime: "5-8 min",
				Notes: "A-108 is AC bus"},
		},
		keywords: []string{"nariman point", "cuffe parade", "mantralaya", "ncpa", "world trade center", "wtc"},
	},
	{
		Name: "Worli",
		Connections: []Connection{
			{Station: "Lower Parel", Line: "Western", Buses: []string{"110", "28", "83", "A-125", "168"}, TravelTime: "10-15 min",
				Notes: "110 and 28 are most frequent"},
			{Station: "Dadar", Line: "Western/Central", Buses: []string{"385", "A-118", "A-167"}, TravelTime: "15-20 min",
				Notes: "A-118 and A-167 are AC buses"},
		},
		keywords: []string{"worli", "worli sea face", "worli naka", "haji ali"},
	},
	{
		Name: "Lokhandwala / Oshiwara",
		Connections: []Connection{
			{Station: "Andheri", Line: "Western", Buses: []string{"A-180", "251", "266"}, TravelTime: "10-15 min",
				Notes: "A-180 runs every 10-15 min"},
			{Station: "Goregaon", Line: "Western", Buses: []string{"261", "251"}, TravelTime: "10-12 min",
				Notes: "From Oshiwara Depot"},
		},
		keywords: []string{"lokhandwala", "oshiwara", "four bungalows"},
	},
	{
		Name: "Colaba",
		Connections: []Connection{
			{Station: "Churchgate", Line: "Western", Buses: []string{"3", "11", "103", "132"}, TravelTime: "15-20 min",
				Notes: "3 and 11 are frequent routes"},
			{Station: "CSMT", Line: "Central/Harbour", Buses: []string{"1", "3", "21", "125"}, TravelTime: "15-20 min",
				Notes: "Multiple stops along Colaba Causeway"},
		},
		keywords: []string{"colaba", "gateway of india", "taj hotel", "regal"},
	},
	{
		Name: "Chembur",
		Connections: []Connection{
			{Station: "Chembur", Line: "Harbour", Buses: []string{"354", "356", "371"}, TravelTime: "5-10 min",
				Notes: "Chembur station on Harbour line"},
			{Station: "Kurla", Line: "Central/Harbour", Buses: []string{"362", "364"}, TravelTime: "15-20 min",
				Notes: "For Central line connections"},
		},
		keywords: []string{"chembur", "diamond garden", "chembur east"},
	},
	{
		Name: "Airoli / Ghansoli",
		Connections: []Connection{
			{Station: "Airoli", Line: "Trans-Harbour", Buses: []string{"NMMT-11", "NMMT-21"}, TravelTime: "5-10 min",
				Notes: "NMMT buses. Airoli station connects to Thane and CSMT"},
		},
		keywords: []string{"airoli", "ghansoli", "mindspace airoli"},
	},
	{
		Name: "Versova",
		Connections: []Connection{
			{Station: "Andheri", Line: "Western", Buses: []string{"203", "231", "234"}, TravelTime: "20-25 min",
				Notes: "Or take Metro Line 1 from Versova to Andheri"},
		},
		keywords: []string{"versova", "versova beach", "yari road", "seven bungalows"},
	},
	{
		Name: "Bandra West (Linking Road/Hill Road)",
		Connections: []Connection{
			{Station: "Bandra", Line: "Western/Harbour", Buses: []string{"210", "211", "215"}, TravelTime: "10-15 min",
				Notes: "Walk to Linking Road from station west"},
		},
		keywords: []string{"linking road", "hill road", "bandra west", "pali hill", "bandstand", "carter road"},
	},
	{
		Name: "Lower Parel (Phoenix/High Street)",
		Connections: []Connection{
			{Station: "Lower Parel", Line: "Western", Buses: []string{"83", "84", "85"}, TravelTime: "5-10 min",
				Notes: "Phoenix Mall is a 5 min walk from the station"},
		},
		keywords: []string{"phoenix", "high street", "kamala mills", "palladium"},
	},
}

// Find returns the first area whose keyword appears in the query.
func Find(query string) (Area, bool) {
	lower := strings.ToLower(query)
	for _, a := range areas {
		for _, kw := range a.keywords {
			if strings.Contains(lower, kw) {
				return a, true
			}
		}
	}
	return Area{}, false
}

// Areas returns all known first/last mile areas.
func Areas() []Area { return areas }
