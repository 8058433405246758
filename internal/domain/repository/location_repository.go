package repository

import (
	"context"
	"errors"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a user has no stored location.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the operations for location persistence against
// the backing document store. At most one location document exists per user;
// the reconciliation service enforces upsert semantics through FindByUserID
// followed by Create or Update.
type LocationRepository interface {
	// FindByUserID retrieves the user's location, or ErrLocationNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Location, error)

	// Create persists a new location document.
	Create(ctx context.Context, location *entity.Location) error

	// Update replaces the mutable fields of an existing location document.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes a user's location document. Only used on user deletion.
	Delete(ctx context.Context, userID uuid.UUID) error

	// FindActiveUserLocations returns the user+location composite view for
	// users whose activity timestamp falls within the staleness window,
	// newest location first, capped at limit.
	FindActiveUserLocations(ctx context.Context, limit int64) ([]entity.UserLocation, error)

	// FindUserLocationsInRadius returns the composite view for users whose
	// location lies within radiusKm of the given center, nearest first.
	FindUserLocationsInRadius(ctx context.Context, lat, lng, radiusKm float64) ([]entity.UserLocation, error)
}
