package mongodb

import (
	"context"
	"time"

	"lookate/config"
	"lookate/internal/domain/entity"
	"lookate/internal/domain/repository"
	"lookate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// locationRepository implements repository.LocationRepository on the
// locations collection.
type locationRepository struct {
	collection   *mongo.Collection
	onlineWindow time.Duration
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *mongo.Database, cfg *config.Config) repository.LocationRepository {
	window := 30 * time.Minute
	if cfg.Presence != nil && cfg.Presence.OnlineWindow > 0 {
		window = cfg.Presence.OnlineWindow
	}

	return &locationRepository{
		collection:   db.Collection(locationsCollection),
		onlineWindow: window,
	}
}

// FindByUserID retrieves the user's single location document.
func (repo *locationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.collection.FindOne(ctx, bson.M{"userId": userID.String()}).Decode(&locationM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user id")
	}

	return locationM.ToEntity()
}

// Create inserts the user's first location document. The unique userId index
// rejects a second document for the same user.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if _, err := repo.collection.InsertOne(ctx, model.FromLocationEntity(location)); err != nil {
		return errors.Wrap(err, "failed to create location")
	}

	return nil
}

// Update replaces the stored document by its id, keeping the record identity.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := model.FromLocationEntity(location)

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": locationM.ID}, locationM)
	if err != nil {
		return errors.Wrap(err, "failed to update location")
	}
	if result.MatchedCount == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// Delete removes the user's location document.
func (repo *locationRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := repo.collection.DeleteOne(ctx, bson.M{"userId": userID.String()}); err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// FindActiveUserLocations returns the most recently updated locations inside
// the staleness window, joined with their users.
func (repo *locationRepository) FindActiveUserLocations(ctx context.Context, limit int64) ([]entity.UserLocation, error) {
	now := time.Now()
	cutoff := now.Add(-repo.onlineWindow)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"updatedAt": bson.M{"$gte": cutoff}}}},
		bson.D{{Key: "$sort", Value: bson.M{"updatedAt": -1}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, userLookupStages()...)

	return repo.aggregateUserLocations(ctx, pipeline, now)
}

// FindUserLocationsInRadius returns users inside the window whose last
// reported position is within radiusKm of the point.
func (repo *locationRepository) FindUserLocationsInRadius(ctx context.Context, lat, lng, radiusKm float64) ([]entity.UserLocation, error) {
	now := time.Now()
	cutoff := now.Add(-repo.onlineWindow)

	// $geoNear must be the first stage of the pipeline.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.M{
			"near":          model.NewGeoPoint(lat, lng),
			"key":           "point",
			"distanceField": "distanceMeters",
			"maxDistance":   radiusKm * 1000,
			"spherical":     true,
		}}},
		bson.D{{Key: "$match", Value: bson.M{"updatedAt": bson.M{"$gte": cutoff}}}},
	}
	pipeline = append(pipeline, userLookupStages()...)

	return repo.aggregateUserLocations(ctx, pipeline, now)
}

func userLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
	}
}

func (repo *locationRepository) aggregateUserLocations(ctx context.Context, pipeline mongo.Pipeline, now time.Time) ([]entity.UserLocation, error) {
	cursor, err := repo.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate user locations")
	}
	defer cursor.Close(ctx)

	var documents []model.UserLocationModel
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, errors.Wrap(err, "failed to decode user locations")
	}

	out := make([]entity.UserLocation, 0, len(documents))
	for i := range documents {
		userLocation, err := documents[i].ToUserLocation(now, repo.onlineWindow)
		if err != nil {
			return nil, err
		}
		out = append(out, userLocation)
	}

	return out, nil
}
