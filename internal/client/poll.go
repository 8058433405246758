package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lookate/internal/domain/entity"
	"lookate/internal/usecase"

	"github.com/pkg/errors"
)

// pollDelivery fetches the full snapshot on a fixed interval and replaces
// the shared state wholesale. It reports Degraded so callers can tell the
// modes apart.
type pollDelivery struct {
	opts  Options
	state *sharedState
}

func newPollDelivery(opts Options) *pollDelivery {
	return &pollDelivery{
		opts:  opts,
		state: newSharedState(),
	}
}

// apiResponse mirrors the server's response envelope with a raw Data field
// so each endpoint can decode its own payload type.
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error,omitempty"`
}

// Start refreshes immediately, then on every tick, until ctx is cancelled.
func (d *pollDelivery) Start(ctx context.Context) error {
	d.refresh(ctx)

	ticker := time.NewTicker(d.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.refresh(ctx)
		}
	}
}

// refresh replaces both views from the REST API. A failed fetch keeps the
// previous view; staleness is preferable to flapping.
func (d *pollDelivery) refresh(ctx context.Context) {
	var locations []entity.UserLocation
	if err := d.get(ctx, "/locations", &locations); err != nil {
		d.opts.Logger.Warn("location poll failed", slog.Any("error", err))
	} else {
		d.state.replaceLocations(locations)
	}

	var users []entity.Presence
	if err := d.get(ctx, "/presence", &users); err != nil {
		d.opts.Logger.Warn("presence poll failed", slog.Any("error", err))
	} else {
		d.state.replaceUsers(users)
	}
}

// UpdateLocation POSTs the report and optimistically merges the returned
// record so the local view does not wait a full poll interval.
func (d *pollDelivery) UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) error {
	body, err := json.Marshal(input)
	if err != nil {
		return errors.Wrap(err, "failed to encode location report")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.opts.PollURL+"/locations", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build location request")
	}
	req.Header.Set("Content-Type", "application/json")
	d.authorize(req)

	resp, err := d.opts.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "location report failed")
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return err
	}

	var location entity.Location
	if err := json.Unmarshal(envelope.Data, &location); err != nil {
		return errors.Wrap(err, "failed to decode location record")
	}

	d.state.mergeLocation(entity.UserLocation{
		UserID:   location.UserID,
		Location: location,
		IsOnline: true,
		LastSeen: location.Timestamp,
	})

	return nil
}

func (d *pollDelivery) Snapshot() []entity.UserLocation {
	return d.state.snapshot()
}

func (d *pollDelivery) ConnectedUsers() []entity.Presence {
	return d.state.connectedUsers()
}

// State always reports degraded; a poll client never has a push channel.
func (d *pollDelivery) State() State {
	return State{Connected: true, Degraded: true}
}

func (d *pollDelivery) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.opts.PollURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", path)
	}
	d.authorize(req)

	resp, err := d.opts.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s request failed", path)
	}
	defer resp.Body.Close()

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		return err
	}

	return errors.Wrapf(json.Unmarshal(envelope.Data, v), "failed to decode %s payload", path)
}

func (d *pollDelivery) authorize(req *http.Request) {
	if d.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+d.opts.Token)
	}
}

func decodeEnvelope(resp *http.Response) (*apiResponse, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrapf(err, "unexpected response with status %d", resp.StatusCode)
	}

	if !envelope.Success {
		code := "UNKNOWN"
		details := envelope.Message
		if envelope.Error != nil {
			code = envelope.Error.Code
			if envelope.Error.Details != "" {
				details = envelope.Error.Details
			}
		}

		return nil, errors.Errorf("request rejected: %s (%s)", details, code)
	}

	return &envelope, nil
}
