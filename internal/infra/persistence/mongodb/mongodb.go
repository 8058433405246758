// Package mongodb contains the concrete implementation of the persistence
// layer on the mongo document store.
package mongodb

import (
	"context"
	"log/slog"

	"lookate/config"
	"lookate/internal/domain/lifecycle"
	"lookate/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	usersCollection     = "users"
	locationsCollection = "locations"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the mongo database handle. Connect ping and index creation run
// on start, disconnect on stop.
func New(params Params) (*mongo.Database, error) {
	mongoCfg := params.Config.Mongo
	if mongoCfg == nil || mongoCfg.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	opts := options.Client().ApplyURI(mongoCfg.URI)

	connectCtx, cancel := context.WithTimeout(context.Background(), mongoCfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	db := client.Database(mongoCfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping mongo")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("mongo connected",
				slog.String("database", mongoCfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the repositories rely on: a unique
// userId index enforcing one location per user, a 2dsphere index for radius
// queries, and an updatedAt index for the staleness window scan.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	locationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "point", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "updatedAt", Value: -1}},
		},
	}

	if _, err := db.Collection(locationsCollection).Indexes().CreateMany(ctx, locationIndexes); err != nil {
		return errors.Wrap(err, "failed to create location indexes")
	}

	return nil
}
