// Package geo provides the geometry helpers behind the map view: great-circle
// distance, coarse continent bucketing, and marker declustering.
package geo

import (
	"math"

	"lookate/internal/domain/entity"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. The result is non-negative,
// symmetric in its arguments, and zero for identical points.
func DistanceKm(a, b entity.Coordinates) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLng := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*sinLng*sinLng

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
