package fare

// slab is one band of the suburban fare structure. Bands are
// half-open: min <= km < max.
type slab struct {
	minKM, maxKM float64
	second       int
	first        int
	ac           int
}

// Published 2024 suburban slabs, in rupees.
var fareSlabs = []slab{
	{0, 5, 5, 45, 60},
	{5, 10, 5, 55, 70},
	{10, 15, 10, 70, 85},
	{15, 20, 10, 85, 100},
	{20, 25, 15, 105, 120},
	{25, 30, 15, 120, 140},
	{30, 35, 20, 140, 160},
	{35, 40, 20, 160, 180},
	{40, 45, 25, 180, 200},
	{45, 50, 25, 195, 220},
	{50, 60, 30, 215, 250},
	{60, 70, 30, 230, 280},
	{70, 80, 35, 245, 305},
	{80, 100, 35, 260, 330},
}

// Flat prices for journeys of 100 km and beyond.
var longHaul = Prices{Second: 40, First: 280, AC: 360}

// Monthly pass multipliers over the single fare. AC passes run
// relatively more expensive.
const (
	monthlyMultiplier   = 15
	monthlyMultiplierAC = 20
)

// Prices holds the single-journey fare per class, in rupees.
type Prices struct {
	Second int
	First  int
	AC     int
}

// Fare is a priced journey between two stations.
type Fare struct {
	From       string
	To         string
	DistanceKM float64
	Single     Prices
	Monthly    Prices
}

// ForDistance prices a journey of the given length. The second result
// is false for negative distances.
func ForDistance(km float64) (Prices, bool) {
	if km < 0 {
		return Prices{}, false
	}
	for _, s := range fareSlabs {
		if km >= s.minKM && km < s.maxKM {
			return Prices{Second: s.second, First: s.first, AC: s.ac}, true
		}
	}
	return longHaul, true
}

// Calculate prices the journey between two stations by canonical name.
// It returns nil when the distance table cannot connect the pair.
func Calculate(from, to string) *Fare {
	km, ok := Distance(from, to)
	if !ok {
		return nil
	}
	single, ok := ForDistance(km)
	if !ok {
		return nil
	}
	return &Fare{
		From:       from,
		To:         to,
		DistanceKM: km,
		Single:     single,
		Monthly: Prices{
			Second: single.Second * monthlyMultiplier,
			First:  single.First * monthlyMultiplier,
			AC:     single.AC * monthlyMultiplierAC,
		},
	}
}
