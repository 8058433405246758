package impl

import (
	"context"
	"fmt"
	"time"

	"lookate/config"
	"lookate/internal/domain/entity"
	domainerrors "lookate/internal/domain/errors"
	"lookate/internal/domain/repository"
	"lookate/internal/errors"
	"lookate/internal/geo"
	"lookate/internal/presence"
	"lookate/internal/usecase"

	"github.com/google/uuid"
)

const defaultSnapshotLimit = 50

type locationService struct {
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	presence     *presence.Store
	defaultLimit int64
}

// NewLocationService creates the location reconciliation service
func NewLocationService(
	cfg *config.Config,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	presenceStore *presence.Store,
) usecase.LocationUsecase {
	limit := int64(defaultSnapshotLimit)
	if cfg.Poll != nil && cfg.Poll.DefaultLimit > 0 {
		limit = cfg.Poll.DefaultLimit
	}

	return &locationService{
		locationRepo: locationRepo,
		userRepo:     userRepo,
		presence:     presenceStore,
		defaultLimit: limit,
	}
}

// ApplyUpdate validates and persists a location report, keeping at most one
// stored record per user. Validation failures are terminal and leave storage
// untouched.
func (s *locationService) ApplyUpdate(ctx context.Context, userID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	if err := validateUpdateInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewStorageExecuteError(err, "failed to find user by ID")
	}

	now := time.Now()
	location := &entity.Location{
		UserID: user.ID,
		Coordinates: entity.Coordinates{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		Address: entity.Address{
			City:        input.City,
			Country:     input.Country,
			CountryCode: input.CountryCode,
		},
		AccuracyMeters: input.AccuracyMeters,
		Timestamp:      now,
	}

	existing, err := s.locationRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		// Last write wins; the stored record keeps its identity.
		location.ID = existing.ID
		if err := s.locationRepo.Update(ctx, location); err != nil {
			return nil, domainerrors.NewStorageExecuteError(err, "failed to update location")
		}
	case errors.Is(err, repository.ErrLocationNotFound):
		location.ID = uuid.New().String()
		if err := s.locationRepo.Create(ctx, location); err != nil {
			return nil, domainerrors.NewStorageExecuteError(err, "failed to create location")
		}
	default:
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find location by user ID")
	}

	if err := s.userRepo.TouchActivity(ctx, userID, now); err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to touch user activity")
	}
	s.presence.Heartbeat(userID, now)

	return location, nil
}

// ActiveUserLocations returns recently active users with clustered markers
// already spread apart.
func (s *locationService) ActiveUserLocations(ctx context.Context, limit int64) ([]entity.UserLocation, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	locations, err := s.locationRepo.FindActiveUserLocations(ctx, limit)
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find active user locations")
	}

	return geo.Decluster(locations), nil
}

// UserLocationsInRadius returns active users within radiusKm of the point.
func (s *locationService) UserLocationsInRadius(ctx context.Context, lat, lng, radiusKm float64) ([]entity.UserLocation, error) {
	if err := validateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}

	locations, err := s.locationRepo.FindUserLocationsInRadius(ctx, lat, lng, radiusKm)
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "failed to find user locations in radius")
	}

	return geo.Decluster(locations), nil
}

// RemoveLocation deletes the user's stored location. Removing an absent
// record is a no-op.
func (s *locationService) RemoveLocation(ctx context.Context, userID uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, userID); err != nil {
		return domainerrors.NewStorageExecuteError(err, "failed to delete location")
	}

	return nil
}

func validateUpdateInput(input *usecase.UpdateLocationInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("missing location payload")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return err
	}
	if input.City == "" {
		return domainerrors.ErrValidationFailed.WithDetails("city is required")
	}
	if input.Country == "" {
		return domainerrors.ErrValidationFailed.WithDetails("country is required")
	}
	if len(input.CountryCode) != 2 {
		return domainerrors.ErrValidationFailed.WithDetails("countryCode must be exactly 2 characters")
	}
	if input.AccuracyMeters < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("accuracy must not be negative")
	}

	return nil
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("latitude %v is out of range [-90, 90]", lat))
	}
	if lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("longitude %v is out of range [-180, 180]", lng))
	}

	return nil
}
