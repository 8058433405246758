// Package ws hosts the push transport: a websocket hub fanning presence and
// location events out to connected clients.
package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lookate/internal/domain/entity"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/presence"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sendBuffer = 64

// HubParams holds dependencies for the hub, injected by Fx.
type HubParams struct {
	fx.In
	fx.Lifecycle

	LocationUC usecase.LocationUsecase
	PresenceUC usecase.PresenceUsecase
	Presence   *presence.Store
	Logger     *slog.Logger
}

// Hub owns the set of connected users and routes every push event. One
// instance serves the whole process.
type Hub struct {
	mu             sync.RWMutex
	connectedUsers map[uuid.UUID]chan Envelope

	locationUC usecase.LocationUsecase
	presenceUC usecase.PresenceUsecase
	presence   *presence.Store
	logger     *slog.Logger
}

// NewHub creates the hub and starts the presence fan-out loop under the fx
// lifecycle.
func NewHub(params HubParams) *Hub {
	h := newHub(params.LocationUC, params.PresenceUC, params.Presence, params.Logger)

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			events, unsubscribe := h.presence.Subscribe()
			go func() {
				defer close(done)
				defer unsubscribe()
				h.relayPresenceEvents(loopCtx, events)
			}()

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done

			return nil
		},
	})

	return h
}

func newHub(
	locationUC usecase.LocationUsecase,
	presenceUC usecase.PresenceUsecase,
	store *presence.Store,
	logger *slog.Logger,
) *Hub {
	return &Hub{
		connectedUsers: make(map[uuid.UUID]chan Envelope),
		locationUC:     locationUC,
		presenceUC:     presenceUC,
		presence:       store,
		logger:         logger,
	}
}

// relayPresenceEvents turns store transitions into user:online and
// user:offline broadcasts. The transition owner is excluded; they learn
// their own state from the connect snapshot.
func (h *Hub) relayPresenceEvents(ctx context.Context, events <-chan presence.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}

			env, err := NewEnvelope(string(ev.Type), ev.Presence)
			if err != nil {
				h.logger.Error("failed to encode presence event", slog.Any("error", err))

				continue
			}
			h.broadcastExcept(ev.Presence.UserID, env)
		}
	}
}

// Connect registers the user, marks them online and sends the initial
// snapshots. The returned channel delivers every outbound envelope for this
// connection; a previous connection of the same user, if any, is dropped.
func (h *Hub) Connect(ctx context.Context, userID uuid.UUID) (chan Envelope, error) {
	if err := h.presenceUC.Connect(ctx, userID); err != nil {
		return nil, err
	}

	ch := make(chan Envelope, sendBuffer)

	h.mu.Lock()
	if old, ok := h.connectedUsers[userID]; ok {
		close(old)
	}
	h.connectedUsers[userID] = ch
	h.mu.Unlock()

	if err := h.sendInitialState(ctx, userID); err != nil {
		h.logger.Warn("failed to send initial state",
			slog.String("userID", userID.String()),
			slog.Any("error", err))
	}

	return ch, nil
}

// sendInitialState unicasts the active location snapshot and the connected
// user set to a freshly connected client.
func (h *Hub) sendInitialState(ctx context.Context, userID uuid.UUID) error {
	locations, err := h.locationUC.ActiveUserLocations(ctx, 0)
	if err != nil {
		return errors.Wrap(err, "failed to load initial locations")
	}

	initial, err := NewEnvelope(EventLocationsInitial, LocationsPayload{Locations: locations})
	if err != nil {
		return err
	}
	h.unicast(userID, initial)

	connected, err := NewEnvelope(EventUsersConnected, ConnectedUsersPayload{Users: h.presenceUC.ConnectedUsers(ctx)})
	if err != nil {
		return err
	}
	h.unicast(userID, connected)

	return nil
}

// Disconnect unregisters the connection and marks the user offline unless a
// newer connection already took over the slot.
func (h *Hub) Disconnect(ctx context.Context, userID uuid.UUID, ch chan Envelope) {
	h.mu.Lock()
	if current, ok := h.connectedUsers[userID]; ok && current == ch {
		close(current)
		delete(h.connectedUsers, userID)
	}
	_, stillConnected := h.connectedUsers[userID]
	h.mu.Unlock()

	if stillConnected {
		return
	}

	if err := h.presenceUC.Disconnect(ctx, userID); err != nil {
		h.logger.Warn("failed to mark user offline",
			slog.String("userID", userID.String()),
			slog.Any("error", err))
	}
}

// ConnectedCount reports how many users currently hold a connection.
func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connectedUsers)
}

// HandleMessage dispatches one inbound envelope. A failing update never
// tears down the connection or touches other users' state.
func (h *Hub) HandleMessage(ctx context.Context, userID uuid.UUID, env Envelope) {
	switch env.Type {
	case EventLocationUpdate:
		h.handleLocationUpdate(ctx, userID, env)
	case EventHeartbeat:
		if err := h.presenceUC.Heartbeat(ctx, userID); err != nil {
			h.logger.Warn("heartbeat failed",
				slog.String("userID", userID.String()),
				slog.Any("error", err))
		}
	case EventUserActivity:
		h.relayActivity(userID, env)
	default:
		h.logger.Debug("ignoring unknown message type",
			slog.String("type", env.Type),
			slog.String("userID", userID.String()))
	}
}

func (h *Hub) handleLocationUpdate(ctx context.Context, userID uuid.UUID, env Envelope) {
	var input LocationUpdatePayload
	if err := DecodePayload(env, &input); err != nil {
		h.sendUpdateError(userID, domainerrors.ErrValidationFailed.WithDetails("malformed location payload"))

		return
	}

	location, err := h.locationUC.ApplyUpdate(ctx, userID, &input)
	if err != nil {
		h.sendUpdateError(userID, err)

		return
	}

	if ack, err := NewEnvelope(EventLocationUpdateSuccess, UpdateAckPayload{Location: location}); err == nil {
		h.unicast(userID, ack)
	}

	h.broadcastLocationUpdated(userID, location)
}

// broadcastLocationUpdated tells everyone else where the user moved.
func (h *Hub) broadcastLocationUpdated(userID uuid.UUID, location *entity.Location) {
	userLocation := entity.UserLocation{
		UserID:   userID,
		Location: *location,
		IsOnline: true,
		LastSeen: location.Timestamp,
	}
	if p, ok := h.presence.Get(userID); ok {
		userLocation.UserName = p.UserName
		userLocation.UserAvatar = p.UserAvatar
		userLocation.LastSeen = p.LastSeen
	}

	env, err := NewEnvelope(EventLocationUpdated, userLocation)
	if err != nil {
		h.logger.Error("failed to encode location update", slog.Any("error", err))

		return
	}

	h.broadcastExcept(userID, env)
}

// sendUpdateError unicasts the single failure ack for an inbound update.
func (h *Hub) sendUpdateError(userID uuid.UUID, cause error) {
	payload := UpdateAckPayload{
		Code:    "INTERNAL_ERROR",
		Message: cause.Error(),
	}

	var appErr domainerrors.AppError
	if errors.As(cause, &appErr) {
		payload.Code = appErr.ErrorCode()
		payload.Message = appErr.Message()
		if appErr.Details() != "" {
			payload.Message = appErr.Details()
		}
	}

	if env, err := NewEnvelope(EventLocationUpdateError, payload); err == nil {
		h.unicast(userID, env)
	}
}

// relayActivity passes a typing/activity indicator through to other users.
// The sender identity always comes from the connection, never the payload.
func (h *Hub) relayActivity(userID uuid.UUID, inbound Envelope) {
	var payload ActivityPayload
	if len(inbound.Data) > 0 {
		_ = DecodePayload(inbound, &payload)
	}
	payload.UserID = userID
	payload.Timestamp = time.Now()

	env, err := NewEnvelope(EventUserActivity, payload)
	if err != nil {
		return
	}

	h.broadcastExcept(userID, env)
}

// unicast delivers an envelope to a single user, dropping it when the send
// buffer is full. The lock is held across the send so a concurrent reconnect
// cannot close the channel mid-delivery.
func (h *Hub) unicast(userID uuid.UUID, env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ch, ok := h.connectedUsers[userID]
	if !ok {
		return
	}

	select {
	case ch <- env:
	default:
		h.logger.Warn("send buffer full, dropping message",
			slog.String("userID", userID.String()),
			slog.String("type", env.Type))
	}
}

// broadcastExcept delivers an envelope to every connected user except one.
// Broadcasts are fire and forget; full buffers drop.
func (h *Hub) broadcastExcept(sender uuid.UUID, env Envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for userID, ch := range h.connectedUsers {
		if userID == sender {
			continue
		}

		select {
		case ch <- env:
		default:
			h.logger.Warn("send buffer full, dropping broadcast",
				slog.String("userID", userID.String()),
				slog.String("type", env.Type))
		}
	}
}
