package fare

import "strings"

type pair struct{ a, b string }

func key(a, b string) pair {
	return pair{strings.ToLower(a), strings.ToLower(b)}
}

// Pairwise distances in km along key routes. Lookups are symmetric;
// pairs not listed are composed through a hub when possible.
var stationDistances = map[pair]float64{
	// Western line out of Churchgate.
	key("Churchgate", "Marine Lines"):    1.5,
	key("Churchgate", "Charni Road"):     2.5,
	key("Churchgate", "Grant Road"):      3.5,
	key("Churchgate", "Mumbai Central"):  4.5,
	key("Churchgate", "Mahalakshmi"):     6,
	key("Churchgate", "Lower Parel"):     7,
	key("Churchgate", "Prabhadevi"):      8,
	key("Churchgate", "Dadar"):           9,
	key("Churchgate", "Mahim Junction"):  10,
	key("Churchgate", "Bandra"):          12,
	key("Churchgate", "Khar Road"):       14,
	key("Churchgate", "Santa Cruz"):      15,
	key("Churchgate", "Vile Parle"):      17,
	key("Churchgate", "Andheri"):         19,
	key("Churchgate", "Jogeshwari"):      21,
	key("Churchgate", "Goregaon"):        24,
	key("Churchgate", "Malad"):           27,
	key("Churchgate", "Kandivali"):       30,
	key("Churchgate", "Borivali"):        33,
	key("Churchgate", "Dahisar"):         37,
	key("Churchgate", "Mira Road"):       41,
	key("Churchgate", "Bhayandar"):       44,
	key("Churchgate", "Vasai Road"):      52,
	key("Churchgate", "Nalla Sopara"):    56,
	key("Churchgate", "Virar"):           60,

	// Central line out of CSMT.
	key("CSMT", "Masjid"):      1.5,
	key("CSMT", "Byculla"):     4,
	key("CSMT", "Chinchpokli"): 5,
	key("CSMT", "Currey Road"): 6,
	key("CSMT", "Parel"):       7,
	key("CSMT", "Dadar"):       9,
	key("CSMT", "Matunga"):     11,
	key("CSMT", "Sion"):        13,
	key("CSMT", "Kurla"):       15,
	key("CSMT", "Vidyavihar"):  17,
	key("CSMT", "Ghatkopar"):   18,
	key("CSMT", "Vikhroli"):    21,
	key("CSMT", "Kanjurmarg"):  23,
	key("CSMT", "Bhandup"):     25,
	key("CSMT", "Nahur"):       27,
	key("CSMT", "Mulund"):      29,
	key("CSMT", "Thane"):       34,
	key("CSMT", "Kalwa"):       37,
	key("CSMT", "Dombivli"):    48,
	key("CSMT", "Kalyan"):      54,
	key("CSMT", "Ambernath"):   62,
	key("CSMT", "Badlapur"):    68,

	// Harbour line out of CSMT.
	key("CSMT", "Sandhurst Road"): 2,
	key("CSMT", "Dockyard Road"):  3,
	key("CSMT", "Sewri"):          5,
	key("CSMT", "Vadala Road"):    7,
	key("CSMT", "GTB Nagar"):      9,
	key("CSMT", "Chunabhatti"):    11,
	key("CSMT", "Chembur"):        14,
	key("CSMT", "Govandi"):        16,
	key("CSMT", "Mankhurd"):       19,
	key("CSMT", "Vashi"):          25,
	key("CSMT", "Sanpada"):        27,
	key("CSMT", "Nerul"):          32,
	key("CSMT", "Belapur"):        35,
	key("CSMT", "Panvel"):         42,

	// Interchange spans used by hub composition.
	key("Dadar", "Thane"):    25,
	key("Dadar", "Borivali"): 24,
	key("Dadar", "Andheri"):  10,
	key("Dadar", "Kurla"):    6,
	key("Dadar", "Bandra"):   3,
	key("Dadar", "Panvel"):   33,

	key("Kurla", "Thane"):     19,
	key("Kurla", "Panvel"):    27,
	key("Kurla", "Vashi"):     10,
	key("Kurla", "Ghatkopar"): 3,
	key("Kurla", "Andheri"):   8,

	key("Thane", "Kalyan"):   20,
	key("Thane", "Dombivli"): 14,
	key("Thane", "Panvel"):   24,
	key("Thane", "Vashi"):    11,

	key("Bandra", "Andheri"):  7,
	key("Bandra", "Borivali"): 21,
	key("Bandra", "Kurla"):    4,

	key("Andheri", "Borivali"):  14,
	key("Andheri", "Virar"):     41,
	key("Andheri", "Ghatkopar"): 7, // via Metro Line 1

	key("Borivali", "Virar"): 27,

	key("Vashi", "Panvel"):  17,
	key("Vashi", "Belapur"): 10,

	key("Ghatkopar", "Thane"):  16,
	key("Ghatkopar", "Panvel"): 24,

	key("Panvel", "Belapur"): 7,
	key("Panvel", "Nerul"):   10,
}

// Hubs tried, in order, when a pair has no direct table entry.
var hubOrder = []string{"Dadar", "Kurla", "Thane", "Bandra", "Andheri", "CSMT", "Churchgate"}

// Distance returns the km between two stations, composing through the
// first hub that connects both when no direct entry exists. The second
// result is false when no path through the table exists.
func Distance(a, b string) (float64, bool) {
	if strings.EqualFold(a, b) {
		return 0, true
	}
	if d, ok := stationDistances[key(a, b)]; ok {
		return d, true
	}
	if d, ok := stationDistances[key(b, a)]; ok {
		return d, true
	}
	for _, hub := range hubOrder {
		d1, ok1 := lookup(a, hub)
		d2, ok2 := lookup(hub, b)
		if ok1 && ok2 {
			return d1 + d2, true
		}
	}
	return 0, false
}

func lookup(a, b string) (float64, bool) {
	if d, ok := stationDistances[key(a, b)]; ok {
		return d, true
	}
	d, ok := stationDistances[key(b, a)]
	return d, ok
}
