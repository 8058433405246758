package usecase

import (
	"context"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateLocationInput represents a single location report from a client.
// Validate tags mirror the checks the reconciliation service performs, so
// both transports can reject malformed input before it reaches the service.
type UpdateLocationInput struct {
	Latitude       float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64 `json:"longitude" validate:"gte=-180,lte=180"`
	City           string  `json:"city" validate:"required"`
	Country        string  `json:"country" validate:"required"`
	CountryCode    string  `json:"countryCode" validate:"required,len=2"`
	AccuracyMeters float64 `json:"accuracy,omitempty" validate:"gte=0"`
}

// LocationUsecase defines the location reconciliation use cases
type LocationUsecase interface {
	// ApplyUpdate validates and persists a location report for the user,
	// keeping at most one stored record per user.
	ApplyUpdate(ctx context.Context, userID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// ActiveUserLocations returns the locations of users active within the
	// configured staleness window, markers already spread apart.
	ActiveUserLocations(ctx context.Context, limit int64) ([]entity.UserLocation, error)

	// UserLocationsInRadius returns active users within radiusKm of a point.
	UserLocationsInRadius(ctx context.Context, lat, lng, radiusKm float64) ([]entity.UserLocation, error)

	// RemoveLocation deletes the user's stored location, if any.
	RemoveLocation(ctx context.Context, userID uuid.UUID) error
}
