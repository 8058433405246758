// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Credentials and session issuance
// live with the external identity provider; the core only carries the fields
// it needs to label map markers and derive activity.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email.
	Name      string    // The user's display name.
	Avatar    string    // Optional avatar URL, empty when the user has none.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the user's last observed activity.
}
