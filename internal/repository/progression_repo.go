package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/model"
)

// ProgressionRepo tracks per-pair completion counts and the derived content
// branch. Records are created lazily on first completion.
type ProgressionRepo interface {
	Get(ctx context.Context, pairID, activityType string) (*model.BranchProgressionRecord, error)
	IncrementCompletion(ctx context.Context, pairID, activityType string, branchCount int) (*model.BranchProgressionRecord, error)
}

type progressionRepo struct {
	collection *mongo.Collection
}

func NewProgressionRepo(db *mongo.Database) ProgressionRepo {
	return &progressionRepo{collection: db.Collection("branch_progression")}
}

func (r *progressionRepo) Get(ctx context.Context, pairID, activityType string) (*model.BranchProgressionRecord, error) {
	var record model.BranchProgressionRecord
	err := r.collection.FindOne(ctx, bson.M{
		"pairId":       pairID,
		"activityType": activityType,
	}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// IncrementCompletion bumps totalCompletions and recomputes
// currentBranch = totalCompletions % branchCount in one upsert, returning the
// updated record. Callers hold the match lock, so the two-step write below is
// not racing other completions of the same match.
func (r *progressionRepo) IncrementCompletion(ctx context.Context, pairID, activityType string, branchCount int) (*model.BranchProgressionRecord, error) {
	if branchCount < 1 {
		branchCount = 1
	}

	filter := bson.M{"pairId": pairID, "activityType": activityType}
	update := bson.M{
		"$inc": bson.M{"totalCompletions": 1},
		"$set": bson.M{
			"branchCount": branchCount,
			"updatedAt":   time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var record model.BranchProgressionRecord
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, err
	}

	record.CurrentBranch = record.TotalCompletions % record.BranchCount
	if _, err := r.collection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"currentBranch": record.CurrentBranch},
	}); err != nil {
		return nil, err
	}
	return &record, nil
}
