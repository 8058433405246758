package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lookate/internal/delivery/ws"
	"lookate/internal/domain/entity"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastOptions(pushURL string) Options {
	opts := Options{
		PushURL:           pushURL,
		Token:             "test-token",
		HandshakeTimeout:  200 * time.Millisecond,
		ReconnectAttempts: 2,
		ReconnectBackoff:  10 * time.Millisecond,
		HeartbeatInterval: 20 * time.Millisecond,
	}
	opts.applyDefaults()

	return opts
}

// pushTestServer upgrades one connection and replays the given envelopes,
// then reads inbound messages into a channel.
func pushTestServer(t *testing.T, initial []ws.Envelope) (*httptest.Server, chan ws.Envelope) {
	t.Helper()

	inbound := make(chan ws.Envelope, 16)
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)

		for _, env := range initial {
			require.NoError(t, conn.WriteJSON(env))
		}

		for {
			var env ws.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			inbound <- env
		}
	}))

	return server, inbound
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestPushDelivery_MergesInitialStateAndEvents(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	initialLocations, err := ws.NewEnvelope(ws.EventLocationsInitial, ws.LocationsPayload{
		Locations: []entity.UserLocation{{UserID: alice, UserName: "alice", IsOnline: true}},
	})
	require.NoError(t, err)

	connected, err := ws.NewEnvelope(ws.EventUsersConnected, ws.ConnectedUsersPayload{
		Users: []entity.Presence{{UserID: alice, UserName: "alice", IsOnline: true}},
	})
	require.NoError(t, err)

	online, err := ws.NewEnvelope(ws.EventUserOnline, entity.Presence{UserID: bob, UserName: "bob", IsOnline: true})
	require.NoError(t, err)

	moved, err := ws.NewEnvelope(ws.EventLocationUpdated, entity.UserLocation{
		UserID:   bob,
		UserName: "bob",
		IsOnline: true,
		Location: entity.Location{Coordinates: entity.Coordinates{Latitude: 52.52, Longitude: 13.4}},
	})
	require.NoError(t, err)

	server, _ := pushTestServer(t, []ws.Envelope{initialLocations, connected, online, moved})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, err := Connect(ctx, fastOptions(wsURL(server)))
	require.NoError(t, err)
	assert.Equal(t, State{Connected: true, Degraded: false}, d.State())

	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	require.Eventually(t, func() bool {
		return len(d.Snapshot()) == 2 && len(d.ConnectedUsers()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestPushDelivery_SendsHeartbeatsAndUpdates(t *testing.T) {
	server, inbound := pushTestServer(t, nil)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d, err := Connect(ctx, fastOptions(wsURL(server)))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	require.NoError(t, d.UpdateLocation(ctx, &usecase.UpdateLocationInput{
		Latitude:    52.52,
		Longitude:   13.4,
		City:        "Berlin",
		Country:     "Germany",
		CountryCode: "DE",
	}))

	sawUpdate := false
	sawHeartbeat := false
	deadline := time.After(2 * time.Second)
	for !sawUpdate || !sawHeartbeat {
		select {
		case env := <-inbound:
			switch env.Type {
			case ws.EventLocationUpdate:
				sawUpdate = true
			case ws.EventHeartbeat:
				sawHeartbeat = true
			}
		case <-deadline:
			t.Fatalf("missing traffic: update=%v heartbeat=%v", sawUpdate, sawHeartbeat)
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestConnect_FallsBackToPoll(t *testing.T) {
	// A plain HTTP server refuses the websocket handshake.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no websocket here", http.StatusNotFound)
	}))
	defer server.Close()

	opts := fastOptions(wsURL(server))
	opts.PollURL = server.URL

	d, err := Connect(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, State{Connected: true, Degraded: true}, d.State())
}
