package client

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"lookate/internal/delivery/ws"
	"lookate/internal/domain/entity"
	"lookate/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// pushDelivery keeps a websocket open to the hub and merges every event into
// the shared state as it arrives.
type pushDelivery struct {
	opts  Options
	state *sharedState

	mu   sync.Mutex
	conn *websocket.Conn
}

func newPushDelivery(opts Options) *pushDelivery {
	return &pushDelivery{
		opts:  opts,
		state: newSharedState(),
	}
}

// dial attempts the websocket handshake with a fixed backoff between
// attempts. All attempts failing means the caller should fall back to poll.
func (d *pushDelivery) dial(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: d.opts.HandshakeTimeout}
	header := http.Header{}
	if d.opts.Token != "" {
		header.Set("Authorization", "Bearer "+d.opts.Token)
	}

	var lastErr error
	for attempt := 1; attempt <= d.opts.ReconnectAttempts; attempt++ {
		conn, _, err := dialer.DialContext(ctx, d.opts.PushURL, header)
		if err == nil {
			d.mu.Lock()
			d.conn = conn
			d.mu.Unlock()

			return nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.opts.ReconnectBackoff):
		}
	}

	return errors.Wrapf(lastErr, "push handshake failed after %d attempts", d.opts.ReconnectAttempts)
}

// Start runs the read loop and the heartbeat ticker until ctx is cancelled
// or the connection drops.
func (d *pushDelivery) Start(ctx context.Context) error {
	conn := d.connection()
	if conn == nil {
		return errors.New("push delivery was not dialed")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	go func() { readErr <- d.readLoop(conn) }()

	ticker := time.NewTicker(d.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.Close()
			<-readErr

			return nil
		case err := <-readErr:
			conn.Close()

			return errors.Wrap(err, "push read loop stopped")
		case <-ticker.C:
			if err := d.writeEnvelope(ws.Envelope{Type: ws.EventHeartbeat}); err != nil {
				d.opts.Logger.Warn("heartbeat write failed", slog.Any("error", err))
			}
		}
	}
}

func (d *pushDelivery) readLoop(conn *websocket.Conn) error {
	for {
		var env ws.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return err
		}
		d.handleEnvelope(env)
	}
}

// handleEnvelope merges one server event into the shared state.
func (d *pushDelivery) handleEnvelope(env ws.Envelope) {
	switch env.Type {
	case ws.EventLocationsInitial:
		var payload ws.LocationsPayload
		if err := ws.DecodePayload(env, &payload); err == nil {
			d.state.replaceLocations(payload.Locations)
		}
	case ws.EventUsersConnected:
		var payload ws.ConnectedUsersPayload
		if err := ws.DecodePayload(env, &payload); err == nil {
			d.state.replaceUsers(payload.Users)
		}
	case ws.EventUserOnline, ws.EventUserOffline:
		var p entity.Presence
		if err := ws.DecodePayload(env, &p); err == nil {
			d.state.setUser(p)
		}
	case ws.EventLocationUpdated:
		var location entity.UserLocation
		if err := ws.DecodePayload(env, &location); err == nil {
			d.state.mergeLocation(location)
		}
	case ws.EventLocationUpdateSuccess:
		var ack ws.UpdateAckPayload
		if err := ws.DecodePayload(env, &ack); err == nil && ack.Location != nil {
			d.state.mergeLocation(entity.UserLocation{
				UserID:   ack.Location.UserID,
				Location: *ack.Location,
				IsOnline: true,
				LastSeen: ack.Location.Timestamp,
			})
		}
	case ws.EventLocationUpdateError:
		var ack ws.UpdateAckPayload
		if err := ws.DecodePayload(env, &ack); err == nil {
			d.opts.Logger.Warn("location update rejected",
				slog.String("code", ack.Code),
				slog.String("message", ack.Message))
		}
	default:
		d.opts.Logger.Debug("ignoring push event", slog.String("type", env.Type))
	}
}

// UpdateLocation fires the report over the socket. The ack comes back
// through the read loop.
func (d *pushDelivery) UpdateLocation(_ context.Context, input *usecase.UpdateLocationInput) error {
	env, err := ws.NewEnvelope(ws.EventLocationUpdate, input)
	if err != nil {
		return err
	}

	return d.writeEnvelope(env)
}

func (d *pushDelivery) Snapshot() []entity.UserLocation {
	return d.state.snapshot()
}

func (d *pushDelivery) ConnectedUsers() []entity.Presence {
	return d.state.connectedUsers()
}

func (d *pushDelivery) State() State {
	return State{Connected: d.connection() != nil}
}

func (d *pushDelivery) connection() *websocket.Conn {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.conn
}

// writeEnvelope serializes writes; gorilla allows one concurrent writer.
func (d *pushDelivery) writeEnvelope(env ws.Envelope) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		return errors.New("push connection is not established")
	}

	return d.conn.WriteJSON(env)
}
