package ws

import (
	"context"
	"sync"

	"lookate/internal/errors"

	"github.com/google/uuid"
)

// wsConn is the subset of the gorilla connection the pump loops need.
// Tests substitute an in-memory implementation.
type wsConn interface {
	Close() error
	WriteJSON(v any) error
	ReadJSON(v any) error
}

// connHub is the hub surface a single connection uses.
type connHub interface {
	Connect(ctx context.Context, userID uuid.UUID) (chan Envelope, error)
	Disconnect(ctx context.Context, userID uuid.UUID, ch chan Envelope)
	HandleMessage(ctx context.Context, userID uuid.UUID, env Envelope)
}

// Connection couples one websocket to the hub: a read pump feeding inbound
// envelopes and a main loop writing outbound ones.
type Connection struct {
	ws       wsConn
	hub      connHub
	userID   uuid.UUID
	inbound  chan Envelope
	outbound chan Envelope
	errorCh  chan error
}

// NewConnection registers the user with the hub and prepares the pumps.
func NewConnection(ctx context.Context, hub connHub, ws wsConn, userID uuid.UUID) (*Connection, error) {
	outbound, err := hub.Connect(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Connection{
		ws:       ws,
		hub:      hub,
		userID:   userID,
		inbound:  make(chan Envelope),
		outbound: outbound,
		errorCh:  make(chan error, 2),
	}, nil
}

// Handle runs the connection until the peer goes away or ctx is cancelled.
func (c *Connection) Handle(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		c.hub.Disconnect(context.WithoutCancel(ctx), c.userID, c.outbound)
	}()

	var wg sync.WaitGroup
	wg.Go(func() {
		c.errorCh <- c.pumpMessages(ctx)
		cancel()
	})

	wg.Go(func() {
		c.errorCh <- c.mainLoop(ctx)
		cancel()
	})

	var err error
	select {
	case err = <-c.errorCh:
	case <-ctx.Done():
	}
	c.ws.Close()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func (c *Connection) pumpMessages(ctx context.Context) error {
	for {
		var env Envelope
		if err := c.ws.ReadJSON(&env); err != nil {
			return err
		}
		select {
		case c.inbound <- env:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Connection) mainLoop(ctx context.Context) error {
	for {
		select {
		case env := <-c.inbound:
			c.hub.HandleMessage(ctx, c.userID, env)
		case env, ok := <-c.outbound:
			if !ok {
				// The hub dropped this connection, a reconnect took over.
				return nil
			}
			if err := c.ws.WriteJSON(env); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
