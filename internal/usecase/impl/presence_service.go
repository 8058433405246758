package impl

import (
	"context"
	"time"

	"lookate/internal/domain/entity"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/domain/repository"
	"lookate/internal/errors"
	"lookate/internal/presence"
	"lookate/internal/usecase"

	"github.com/google/uuid"
)

type presenceService struct {
	store    *presence.Store
	userRepo repository.UserRepository
}

// NewPresenceService creates the presence lifecycle service
func NewPresenceService(store *presence.Store, userRepo repository.UserRepository) usecase.PresenceUsecase {
	return &presenceService{
		store:    store,
		userRepo: userRepo,
	}
}

// Connect marks the user online and records the activity in storage, so the
// staleness window stays truthful across reconnects.
func (s *presenceService) Connect(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewStorageExecuteError(err, "failed to find user by ID")
	}

	now := time.Now()
	s.store.MarkOnline(user.ID, user.Name, user.Avatar, now)

	if err := s.userRepo.TouchActivity(ctx, userID, now); err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to touch user activity")
	}

	return nil
}

// Disconnect marks the user offline and records the activity in storage.
func (s *presenceService) Disconnect(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	s.store.MarkOffline(userID, now)

	if err := s.userRepo.TouchActivity(ctx, userID, now); err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to touch user activity")
	}

	return nil
}

// Heartbeat refreshes the user's activity without a presence transition.
func (s *presenceService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	s.store.Heartbeat(userID, now)

	if err := s.userRepo.TouchActivity(ctx, userID, now); err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to touch user activity")
	}

	return nil
}

// ConnectedUsers returns the currently online users.
func (s *presenceService) ConnectedUsers(_ context.Context) []entity.Presence {
	return s.store.Snapshot()
}
