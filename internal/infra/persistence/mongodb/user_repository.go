package mongodb

import (
	"context"
	"time"

	"lookate/internal/domain/entity"
	"lookate/internal/domain/repository"
	"lookate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(usersCollection),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToEntity()
}

// Create persists a new user document.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	if _, err := repo.collection.InsertOne(ctx, model.FromUserEntity(user)); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

// TouchActivity moves the user's activity timestamp forward. The staleness
// window is derived from this field, so every connect, disconnect, heartbeat
// and location report lands here.
func (repo *userRepository) TouchActivity(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"updatedAt": at}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to touch user activity")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
