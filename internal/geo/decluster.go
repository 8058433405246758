package geo

import (
	"math"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	// ClusterThresholdKm is the distance below which two markers count as
	// visually overlapping.
	ClusterThresholdKm = 0.1

	// ringRadiusDegrees is the ring radius in coordinate degrees,
	// roughly 100 meters at mid latitudes.
	ringRadiusDegrees = 0.001
)

// Decluster repositions visually overlapping markers onto a small ring so
// each stays distinguishable. Entries with no nearby peer pass through
// unchanged. It is a pure function of the input snapshot and must be re-run
// whenever the location list changes; output order is unspecified.
//
// Grouping is pairwise against the first unprocessed member, not a
// transitive closure: points within threshold of the anchor but not of each
// other still share the anchor's ring. Kept deliberately, matching the
// observed map behavior.
func Decluster(in []entity.UserLocation) []entity.UserLocation {
	if len(in) < 2 {
		return in
	}

	out := make([]entity.UserLocation, 0, len(in))
	processed := make(map[uuid.UUID]struct{}, len(in))

	for i, anchor := range in {
		if _, done := processed[anchor.UserID]; done {
			continue
		}

		group := []entity.UserLocation{anchor}
		for _, other := range in[i+1:] {
			if _, done := processed[other.UserID]; done {
				continue
			}
			if DistanceKm(anchor.Location.Coordinates, other.Location.Coordinates) < ClusterThresholdKm {
				group = append(group, other)
			}
		}

		if len(group) == 1 {
			out = append(out, anchor)
			processed[anchor.UserID] = struct{}{}

			continue
		}

		center := anchor.Location.Coordinates
		for idx, member := range group {
			angle := 2 * math.Pi * float64(idx) / float64(len(group))
			member.Location.Coordinates = entity.Coordinates{
				Latitude:  center.Latitude + math.Sin(angle)*ringRadiusDegrees,
				Longitude: center.Longitude + math.Cos(angle)*ringRadiusDegrees,
			}
			out = append(out, member)
			processed[member.UserID] = struct{}{}
		}
	}

	return out
}
