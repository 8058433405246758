package ws

import (
	"encoding/json"
	"time"

	"lookate/internal/domain/entity"
	"lookate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Event types carried in the envelope. Clients switch on these.
const (
	EventUserOnline            = "user:online"
	EventUserOffline           = "user:offline"
	EventUsersConnected        = "users:connected"
	EventLocationsInitial      = "locations:initial"
	EventLocationUpdate        = "location:update"
	EventLocationUpdateSuccess = "location:update:success"
	EventLocationUpdateError   = "location:update:error"
	EventLocationUpdated       = "location:updated"
	EventHeartbeat             = "heartbeat"
	EventUserActivity          = "user:activity"
)

// Envelope is the tagged wire format. Data holds the event payload, encoded
// per event type.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ConnectedUsersPayload carries the full set of online users.
type ConnectedUsersPayload struct {
	Users []entity.Presence `json:"users"`
}

// LocationsPayload carries a snapshot of active user locations.
type LocationsPayload struct {
	Locations []entity.UserLocation `json:"locations"`
}

// LocationUpdatePayload is the inbound location report. It reuses the use
// case input so both transports accept the identical shape.
type LocationUpdatePayload = usecase.UpdateLocationInput

// UpdateAckPayload answers a location report. Exactly one ack is sent per
// inbound update: Location on success, Message on failure.
type UpdateAckPayload struct {
	Location *entity.Location `json:"location,omitempty"`
	Code     string           `json:"code,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// ActivityPayload is the relayed typing/activity indicator.
type ActivityPayload struct {
	UserID    uuid.UUID `json:"userId"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEnvelope encodes a payload under an event type.
func NewEnvelope(eventType string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: eventType}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, errors.Wrapf(err, "failed to encode %s payload", eventType)
	}

	return Envelope{Type: eventType, Data: data}, nil
}

// DecodePayload decodes an envelope's payload into v.
func DecodePayload(env Envelope, v any) error {
	if len(env.Data) == 0 {
		return errors.Errorf("%s message has no payload", env.Type)
	}

	return errors.Wrapf(json.Unmarshal(env.Data, v), "failed to decode %s payload", env.Type)
}
