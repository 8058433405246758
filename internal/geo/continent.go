package geo

// ContinentDefault is returned when no region rule matches.
const ContinentDefault = "Default"

// Continent buckets a coordinate into a coarse region label via rectangular
// lat/lng range tests, first matching rule wins. This is a display heuristic
// for marker coloring, not authoritative geocoding.
func Continent(lat, lng float64) string {
	switch {
	case lat > 30 && lng > -130 && lng < -60:
		return "North America"
	case lat > 35 && lng > -10 && lng < 70:
		return "Europe"
	case lat > 10 && lng > 70 && lng < 180:
		return "Asia"
	case lat < -10 && lng > 110 && lng < 180:
		return "Australia"
	default:
		return ContinentDefault
	}
}
