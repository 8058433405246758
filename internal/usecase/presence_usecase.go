package usecase

import (
	"context"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

// PresenceUsecase defines the presence lifecycle use cases shared by the
// push hub and the poll API.
type PresenceUsecase interface {
	// Connect marks the user online and touches their activity timestamp.
	Connect(ctx context.Context, userID uuid.UUID) error

	// Disconnect marks the user offline and touches their activity timestamp.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	// Heartbeat refreshes the user's activity without a presence transition.
	Heartbeat(ctx context.Context, userID uuid.UUID) error

	// ConnectedUsers returns the currently online users.
	ConnectedUsers(ctx context.Context) []entity.Presence
}
