package entity

import (
	"time"

	"github.com/google/uuid"
)

// Presence is a user's online/offline classification plus their last
// activity timestamp. Owned by the in-memory presence store.
type Presence struct {
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	LastSeen   time.Time `json:"lastSeen"`
	IsOnline   bool      `json:"isOnline"`
}

// ActiveWithin reports whether an activity timestamp still counts as online
// under the given staleness window. Both delivery modes use this same
// derivation so poll and push clients agree on who is online.
func ActiveWithin(lastActivity, now time.Time, window time.Duration) bool {
	return now.Sub(lastActivity) < window
}
