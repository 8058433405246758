package client

import (
	"testing"
	"time"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedState_ReplaceThenMerge(t *testing.T) {
	state := newSharedState()

	alice := uuid.New()
	bob := uuid.New()

	state.replaceLocations([]entity.UserLocation{
		{UserID: alice, UserName: "alice", IsOnline: true},
		{UserID: bob, UserName: "bob", IsOnline: true},
	})
	require.Len(t, state.snapshot(), 2)

	// A push event for alice only touches her record.
	state.mergeLocation(entity.UserLocation{
		UserID:   alice,
		UserName: "alice",
		IsOnline: true,
		Location: entity.Location{Coordinates: entity.Coordinates{Latitude: 48.85, Longitude: 2.35}},
	})

	got := state.snapshot()
	require.Len(t, got, 2)
	for _, l := range got {
		if l.UserID == alice {
			assert.InDelta(t, 48.85, l.Location.Coordinates.Latitude, 1e-9)
		}
	}
}

func TestSharedState_WholesaleReplaceDropsStale(t *testing.T) {
	state := newSharedState()

	stale := uuid.New()
	state.replaceLocations([]entity.UserLocation{{UserID: stale, UserName: "old"}})

	fresh := uuid.New()
	state.replaceLocations([]entity.UserLocation{{UserID: fresh, UserName: "new"}})

	got := state.snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, fresh, got[0].UserID)
}

func TestSharedState_OfflineFlipsLocationView(t *testing.T) {
	state := newSharedState()

	userID := uuid.New()
	state.replaceLocations([]entity.UserLocation{{UserID: userID, UserName: "alice", IsOnline: true}})
	state.setUser(entity.Presence{UserID: userID, UserName: "alice", IsOnline: true, LastSeen: time.Now()})
	require.Len(t, state.connectedUsers(), 1)

	lastSeen := time.Now()
	state.setUser(entity.Presence{UserID: userID, UserName: "alice", IsOnline: false, LastSeen: lastSeen})

	assert.Empty(t, state.connectedUsers())

	got := state.snapshot()
	require.Len(t, got, 1)
	assert.False(t, got[0].IsOnline)
	assert.True(t, got[0].LastSeen.Equal(lastSeen))
}
