// Package client is the consumer side of the location service: a delivery
// strategy that prefers the websocket push channel and falls back to REST
// polling when the push handshake cannot be completed.
package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lookate/internal/domain/entity"
	"lookate/internal/usecase"
)

const (
	defaultHandshakeTimeout  = 5 * time.Second
	defaultReconnectAttempts = 5
	defaultReconnectBackoff  = time.Second
	defaultHeartbeatInterval = 30 * time.Second
	defaultPollInterval      = 30 * time.Second
)

// Delivery unifies the push and poll client modes behind one surface. Start
// blocks until ctx is cancelled or the transport fails terminally.
type Delivery interface {
	Start(ctx context.Context) error
	Snapshot() []entity.UserLocation
	ConnectedUsers() []entity.Presence
	UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) error
	State() State
}

// Options configures a client connection. PushURL is the websocket endpoint
// (ws://host/ws), PollURL the REST base (http://host/api).
type Options struct {
	PushURL string
	PollURL string
	Token   string

	HandshakeTimeout  time.Duration
	ReconnectAttempts int
	ReconnectBackoff  time.Duration
	HeartbeatInterval time.Duration
	PollInterval      time.Duration

	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (o *Options) applyDefaults() {
	if o.HandshakeTimeout <= 0 {
		o.HandshakeTimeout = defaultHandshakeTimeout
	}
	if o.ReconnectAttempts <= 0 {
		o.ReconnectAttempts = defaultReconnectAttempts
	}
	if o.ReconnectBackoff <= 0 {
		o.ReconnectBackoff = defaultReconnectBackoff
	}
	if o.HeartbeatInterval <= 0 {
		o.HeartbeatInterval = defaultHeartbeatInterval
	}
	if o.PollInterval <= 0 {
		o.PollInterval = defaultPollInterval
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Connect establishes a delivery channel: push first, poll on failure. The
// poll fallback never fails to construct, so a reachable REST endpoint keeps
// the client alive even with the push port down.
func Connect(ctx context.Context, opts Options) (Delivery, error) {
	opts.applyDefaults()

	push := newPushDelivery(opts)
	if err := push.dial(ctx); err != nil {
		opts.Logger.Warn("push channel unavailable, falling back to polling",
			slog.String("pushURL", opts.PushURL),
			slog.Any("error", err))

		return newPollDelivery(opts), nil
	}

	return push, nil
}
