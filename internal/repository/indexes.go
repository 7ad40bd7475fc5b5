package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the engine relies on. The unique
// (source, relatedId) index on point_awards is load-bearing: it is the
// idempotency key for reward issuance.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("point_awards").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "source", Value: 1}, {Key: "relatedId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Partial unique: at most one active match per pair, even when two
	// get-or-create calls race past the existence check.
	_, err = db.Collection("matches").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pairId", Value: 1}, {Key: "status", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": "active"}),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("moves").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "matchId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("puzzles").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "activityType", Value: 1}, {Key: "branch", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("branch_progression").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pairId", Value: 1}, {Key: "activityType", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
