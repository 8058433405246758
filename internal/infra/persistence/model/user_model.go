// Package model contains the bson document models for the mongo persistence
// layer and their mapping to domain entities.
package model

import (
	"time"

	"lookate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UserModel is the bson document stored in the users collection. The _id is
// the user's uuid in string form so lookups can join on it directly.
type UserModel struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	Avatar    string    `bson:"avatar,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// FromUserEntity maps a domain user onto its document form.
func FromUserEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToEntity maps the document back to a pure domain entity.
func (m *UserModel) ToEntity() (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user id in document")
	}

	return &entity.User{
		ID:        id,
		Email:     m.Email,
		Name:      m.Name,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
