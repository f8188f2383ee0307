package station

// Ordered corridor sequences. Index 0 is the city terminus; moving toward
// index 0 is the "up" direction.

var westernLine = []string{
	"Churchgate", "Marine Lines", "Charni Road", "Grant Road", "Mumbai Central",
	"Mahalakshmi", "Lower Parel", "Prabhadevi", "Dadar", "Matunga Road",
	"Mahim Junction", "Bandra", "Khar Road", "Santa Cruz", "Vile Parle",
	"Andheri", "Jogeshwari", "Ram Mandir", "Goregaon", "Malad",
	"Kandivali", "Borivali", "Dahisar", "Mira Road", "Bhayandar",
	"Naigaon", "Vasai Road", "Nalla Sopara", "Virar",
}

var centralLine = []string{
	"CSMT", "Masjid", "Byculla", "Chinchpokli", "Currey Road",
	"Parel", "Dadar", "Matunga", "Sion", "Kurla",
	"Vidyavihar", "Ghatkopar", "Vikhroli", "Kanjurmarg", "Bhandup",
	"Nahur", "Mulund", "Thane", "Kalwa", "Dombivli",
	"Kalyan", "Ambernath", "Badlapur",
}

var harbourLine = []string{
	"CSMT", "Masjid", "Sandhurst Road", "Dockyard Road", "Sewri",
	"Vadala Road", "GTB Nagar", "Chunabhatti", "Kurla", "Chembur",
	"Govandi", "Mankhurd", "Vashi", "Sanpada", "Nerul",
	"Belapur", "Panvel",
}

// branchMemberships adds line membership without a corridor ordinal.
// Harbour services reach Bandra over the branch via Vadala Road.
var branchMemberships = map[string][]Line{
	"Bandra": {Harbour},
}

// Abbreviations and common misspellings -> canonical name.
var stationAliases = map[string]string{
	"cst": "CSMT", "vt": "CSMT", "cstm": "CSMT",
	"victoria terminus": "CSMT", "chhatrapati shivaji": "CSMT",
	"mumbai cst": "CSMT", "mumbai csmt": "CSMT",
	"anderi": "Andheri", "andhery": "Andheri", "andehri": "Andheri",
	"borivli": "Borivali", "borivilli": "Borivali",
	"dombivali": "Dombivli", "dombivili": "Dombivli",
	"ghatkopr": "Ghatkopar",
	"churchgte": "Churchgate", "chruchgate": "Churchgate",
	"curla": "Kurla",
	"thana": "Thane", "thanae": "Thane",
	"kalian": "Kalyan", "kalyaan": "Kalyan",
	"panwel": "Panvel",
	"vasai": "Vasai Road",
	"nallasopara": "Nalla Sopara", "nala sopara": "Nalla Sopara",
	"nalasopara": "Nalla Sopara",
	"khar": "Khar Road",
	"bombay central": "Mumbai Central",
	"marine line": "Marine Lines",
	"mahim": "Mahim Junction",
	"santacruz": "Santa Cruz",
	"matunga road": "Matunga Road",
	"belapur cbd": "Belapur", "cbd belapur": "Belapur", "cbd": "Belapur",
	"miraroad": "Mira Road",
	"bhayander": "Bhayandar",
	"dahiser": "Dahisar",
	"vileparle": "Vile Parle", "parle": "Vile Parle",
}

// Words excluded from fuzzy candidacy. Short generic words otherwise
// collide with station abbreviations.
var stopWords = map[string]bool{
	"train": true, "trains": true, "from": true, "to": true, "the": true,
	"a": true, "an": true, "on": true, "at": true, "in": true, "of": true,
	"line": true, "local": true, "fast": true, "slow": true, "ac": true,
	"next": true, "show": true, "get": true, "go": true, "going": true,
	"western": true, "central": true, "harbour": true, "harbor": true,
	"railway": true, "station": true,
	"fare": true, "price": true, "cost": true, "ticket": true,
	"kitna": true, "rate": true, "charge": true, "kiraya": true,
	"how": true, "much": true, "what": true, "is": true, "for": true,
	"between": true, "after": true, "before": true, "around": true,
	"about": true, "please": true, "tell": true, "me": true, "when": true,
	"morning": true, "evening": true, "night": true, "afternoon": true,
	"peak": true, "rush": true, "hour": true, "hours": true,
	"all": true, "schedule": true, "full": true, "time": true,
	"timing": true, "timings": true, "today": true, "tomorrow": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"am": true, "pm": true, "platform": true, "info": true,
	"review": true, "reviews": true, "pass": true, "monthly": true,
	"luggage": true, "concession": true, "student": true, "senior": true,
	"bus": true, "metro": true, "reach": true, "there": true, "instead": true,
}
