package model

import (
	"time"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude], the
// order the 2dsphere index expects.
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from latitude and longitude.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
	}
}

// Latitude returns the latitude component of the point.
func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}

	return p.Coordinates[1]
}

// Longitude returns the longitude component of the point.
func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}

	return p.Coordinates[0]
}

// LocationModel is the bson document stored in the locations collection.
// The userId field carries a unique index, so there is at most one document
// per user.
type LocationModel struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"userId"`
	Point       GeoPoint  `bson:"point"`
	City        string    `bson:"city"`
	Country     string    `bson:"country"`
	CountryCode string    `bson:"countryCode"`
	Accuracy    float64   `bson:"accuracy,omitempty"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

// FromLocationEntity maps a domain location onto its document form.
func FromLocationEntity(location *entity.Location) *LocationModel {
	return &LocationModel{
		ID:          location.ID,
		UserID:      location.UserID.String(),
		Point:       NewGeoPoint(location.Coordinates.Latitude, location.Coordinates.Longitude),
		City:        location.Address.City,
		Country:     location.Address.Country,
		CountryCode: location.Address.CountryCode,
		Accuracy:    location.AccuracyMeters,
		UpdatedAt:   location.Timestamp,
	}
}

// ToEntity maps the document back to a pure domain entity.
func (m *LocationModel) ToEntity() (*entity.Location, error) {
	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id in location document")
	}

	return &entity.Location{
		ID:     m.ID,
		UserID: userID,
		Coordinates: entity.Coordinates{
			Latitude:  m.Point.Latitude(),
			Longitude: m.Point.Longitude(),
		},
		Address: entity.Address{
			City:        m.City,
			Country:     m.Country,
			CountryCode: m.CountryCode,
		},
		AccuracyMeters: m.Accuracy,
		Timestamp:      m.UpdatedAt,
	}, nil
}

// UserLocationModel is the joined shape produced by the active-users and
// radius aggregations.
type UserLocationModel struct {
	LocationModel `bson:",inline"`

	User UserModel `bson:"user"`
}

// ToUserLocation maps the joined document to the domain read model, deriving
// the online flag from the activity window.
func (m *UserLocationModel) ToUserLocation(now time.Time, onlineWindow time.Duration) (entity.UserLocation, error) {
	location, err := m.LocationModel.ToEntity()
	if err != nil {
		return entity.UserLocation{}, err
	}

	lastSeen := m.User.UpdatedAt
	if lastSeen.IsZero() {
		lastSeen = m.UpdatedAt
	}

	return entity.UserLocation{
		UserID:     location.UserID,
		UserName:   m.User.Name,
		UserAvatar: m.User.Avatar,
		Location:   *location,
		IsOnline:   entity.ActiveWithin(lastSeen, now, onlineWindow),
		LastSeen:   lastSeen,
	}, nil
}
