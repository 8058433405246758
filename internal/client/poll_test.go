package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lookate/internal/domain/entity"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"code":    http.StatusOK,
		"message": "ok",
		"data":    data,
	})
}

func writeFailure(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"code":    status,
		"message": http.StatusText(status),
		"error":   map[string]string{"code": code, "details": details},
	})
}

func TestPollDelivery_RefreshReplacesState(t *testing.T) {
	alice := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/locations":
			writeSuccess(w, []entity.UserLocation{{UserID: alice, UserName: "alice", IsOnline: true}})
		case "/presence":
			writeSuccess(w, []entity.Presence{{UserID: alice, UserName: "alice", IsOnline: true, LastSeen: time.Now()}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	opts := Options{PollURL: server.URL, Token: "test-token"}
	opts.applyDefaults()
	d := newPollDelivery(opts)

	d.refresh(context.Background())

	require.Len(t, d.Snapshot(), 1)
	require.Len(t, d.ConnectedUsers(), 1)
	assert.Equal(t, "alice", d.ConnectedUsers()[0].UserName)
	assert.Equal(t, State{Connected: true, Degraded: true}, d.State())
}

func TestPollDelivery_FailedRefreshKeepsPreviousView(t *testing.T) {
	healthy := true
	alice := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			writeFailure(w, http.StatusInternalServerError, "STORAGE_EXECUTE_FAILED", "storage down")

			return
		}
		switch r.URL.Path {
		case "/locations":
			writeSuccess(w, []entity.UserLocation{{UserID: alice, UserName: "alice", IsOnline: true}})
		case "/presence":
			writeSuccess(w, []entity.Presence{})
		}
	}))
	defer server.Close()

	opts := Options{PollURL: server.URL}
	opts.applyDefaults()
	d := newPollDelivery(opts)

	d.refresh(context.Background())
	require.Len(t, d.Snapshot(), 1)

	healthy = false
	d.refresh(context.Background())

	assert.Len(t, d.Snapshot(), 1, "a failed poll must not wipe the view")
}

func TestPollDelivery_UpdateLocationMergesOptimistically(t *testing.T) {
	userID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/locations", r.URL.Path)

		var input usecase.UpdateLocationInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		writeSuccess(w, entity.Location{
			ID:     uuid.New().String(),
			UserID: userID,
			Coordinates: entity.Coordinates{
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
			},
			Timestamp: time.Now(),
		})
	}))
	defer server.Close()

	opts := Options{PollURL: server.URL}
	opts.applyDefaults()
	d := newPollDelivery(opts)

	err := d.UpdateLocation(context.Background(), &usecase.UpdateLocationInput{
		Latitude:    35.68,
		Longitude:   139.69,
		City:        "Tokyo",
		Country:     "Japan",
		CountryCode: "JP",
	})
	require.NoError(t, err)

	got := d.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, userID, got[0].UserID)
	assert.InDelta(t, 35.68, got[0].Location.Coordinates.Latitude, 1e-9)
	assert.True(t, got[0].IsOnline)
}

func TestPollDelivery_UpdateLocationRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeFailure(w, http.StatusBadRequest, "VALIDATION_FAILED", "city is required")
	}))
	defer server.Close()

	opts := Options{PollURL: server.URL}
	opts.applyDefaults()
	d := newPollDelivery(opts)

	err := d.UpdateLocation(context.Background(), &usecase.UpdateLocationInput{Latitude: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_FAILED")
	assert.Empty(t, d.Snapshot())
}
