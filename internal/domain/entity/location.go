package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address is the coarse, human-readable part of a shared location.
// Exact street addresses are deliberately never stored.
type Address struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"` // ISO 3166-1 alpha-2, always 2 letters.
}

// Location is a user's single shared position. The store keeps at most one
// Location per user; updates replace the previous coordinates in place.
type Location struct {
	ID             string      `json:"id"`                 // Storage document identifier.
	UserID         uuid.UUID   `json:"userId"`             // Owner; unique across all Locations.
	Coordinates    Coordinates `json:"coordinates"`        //
	Address        Address     `json:"address"`            //
	AccuracyMeters float64     `json:"accuracy,omitempty"` // GPS accuracy in meters, 0 when unknown.
	Timestamp      time.Time   `json:"timestamp"`          // When this position was reported.
}

// UserLocation is the composite view broadcast to clients: user identity,
// their shared location, and the derived online classification. It is
// computed on read and never persisted.
type UserLocation struct {
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Location   Location  `json:"location"`
	IsOnline   bool      `json:"isOnline"`
	LastSeen   time.Time `json:"lastSeen"`
}
