package geo

import (
	"math"
	"sort"
	"testing"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userAt(lat, lng float64) entity.UserLocation {
	return entity.UserLocation{
		UserID: uuid.New(),
		Location: entity.Location{
			Coordinates: entity.Coordinates{Latitude: lat, Longitude: lng},
		},
	}
}

func TestDecluster_EmptyAndSingleInputPassThrough(t *testing.T) {
	assert.Empty(t, Decluster(nil))

	single := []entity.UserLocation{userAt(40.0, -74.0)}
	out := Decluster(single)
	require.Len(t, out, 1)
	assert.Equal(t, single[0], out[0])
}

func TestDecluster_FarApartMarkersUnchanged(t *testing.T) {
	in := []entity.UserLocation{
		userAt(40.7, -74.0),
		userAt(51.5, -0.1),
		userAt(-33.9, 151.2),
	}

	out := Decluster(in)
	require.Len(t, out, len(in))

	byID := make(map[uuid.UUID]entity.UserLocation, len(out))
	for _, ul := range out {
		byID[ul.UserID] = ul
	}
	for _, ul := range in {
		got, ok := byID[ul.UserID]
		require.True(t, ok)
		assert.Equal(t, ul.Location.Coordinates, got.Location.Coordinates)
	}
}

func TestDecluster_IdenticalCoordinatesFormFullRing(t *testing.T) {
	const n = 5
	anchor := entity.Coordinates{Latitude: 48.8566, Longitude: 2.3522}

	in := make([]entity.UserLocation, 0, n)
	for range n {
		in = append(in, userAt(anchor.Latitude, anchor.Longitude))
	}

	out := Decluster(in)
	require.Len(t, out, n)

	angles := make([]float64, 0, n)
	seen := make(map[entity.Coordinates]struct{}, n)
	for _, ul := range out {
		c := ul.Location.Coordinates

		// No two output points coincide.
		_, dup := seen[c]
		assert.False(t, dup, "coincident output point %v", c)
		seen[c] = struct{}{}

		// Each point sits at the ring radius from the anchor, in degrees.
		dLat := c.Latitude - anchor.Latitude
		dLng := c.Longitude - anchor.Longitude
		assert.InDelta(t, ringRadiusDegrees, math.Hypot(dLat, dLng), 1e-9)

		angles = append(angles, math.Atan2(dLat, dLng))
	}

	// Angles are evenly spaced at 360/n degrees.
	sort.Float64s(angles)
	step := 2 * math.Pi / n
	for i := 1; i < n; i++ {
		assert.InDelta(t, step, angles[i]-angles[i-1], 1e-9)
	}
}

func TestDecluster_TwoNearbyUsersShareOneRing(t *testing.T) {
	a := userAt(40.0, -74.0)
	b := userAt(40.0001, -74.0001) // well inside the 0.1 km threshold

	out := Decluster([]entity.UserLocation{a, b})
	require.Len(t, out, 2)

	// Both markers land on the ring around the anchor (a's original
	// position), not at their literal submitted coordinates.
	anchor := a.Location.Coordinates
	for _, ul := range out {
		c := ul.Location.Coordinates
		assert.NotEqual(t, a.Location.Coordinates, c)
		assert.NotEqual(t, b.Location.Coordinates, c)

		dLat := c.Latitude - anchor.Latitude
		dLng := c.Longitude - anchor.Longitude
		assert.InDelta(t, ringRadiusDegrees, math.Hypot(dLat, dLng), 1e-9)
	}
}

func TestDecluster_PairwiseGroupingUsesAnchorPosition(t *testing.T) {
	// b and c are each within the threshold of anchor a, but 0.16 km from
	// each other. Grouping is pairwise against the anchor, so all three
	// still share a's ring.
	a := userAt(40.0, -74.0)
	b := userAt(40.0008, -74.0)
	c := userAt(39.9992, -74.0)

	require.Less(t, DistanceKm(a.Location.Coordinates, b.Location.Coordinates), ClusterThresholdKm)
	require.Less(t, DistanceKm(a.Location.Coordinates, c.Location.Coordinates), ClusterThresholdKm)
	require.Greater(t, DistanceKm(b.Location.Coordinates, c.Location.Coordinates), ClusterThresholdKm)

	out := Decluster([]entity.UserLocation{a, b, c})
	require.Len(t, out, 3)

	anchor := a.Location.Coordinates
	for _, ul := range out {
		dLat := ul.Location.Coordinates.Latitude - anchor.Latitude
		dLng := ul.Location.Coordinates.Longitude - anchor.Longitude
		assert.InDelta(t, ringRadiusDegrees, math.Hypot(dLat, dLng), 1e-9)
	}
}

func TestDecluster_DoesNotMutateInput(t *testing.T) {
	a := userAt(40.0, -74.0)
	b := userAt(40.0001, -74.0001)
	in := []entity.UserLocation{a, b}

	Decluster(in)

	assert.Equal(t, a.Location.Coordinates, in[0].Location.Coordinates)
	assert.Equal(t, b.Location.Coordinates, in[1].Location.Coordinates)
}
