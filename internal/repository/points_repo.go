package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/model"
)

// PointsRepo is the shared pair ledger. Award is idempotent: the audit row
// insert hits the unique (source, relatedId) index first, and only a fresh
// insert increments the pair total. A duplicate call is a successful no-op,
// which is how client retries and redundant completion triggers are absorbed
// without distributed locks.
type PointsRepo interface {
	Award(ctx context.Context, pairID string, amount int, source, relatedID string) (credited bool, newTotal int, err error)
	Total(ctx context.Context, pairID string) (int, error)
}

type pointsRepo struct {
	awards *mongo.Collection
	totals *mongo.Collection
	logger zerolog.Logger
}

func NewPointsRepo(db *mongo.Database, logger zerolog.Logger) PointsRepo {
	return &pointsRepo{
		awards: db.Collection("point_awards"),
		totals: db.Collection("pair_points"),
		logger: logger,
	}
}

func (r *pointsRepo) Award(ctx context.Context, pairID string, amount int, source, relatedID string) (bool, int, error) {
	award := model.PointAward{
		ID:        uuid.NewString(),
		PairID:    pairID,
		Amount:    amount,
		Source:    source,
		RelatedID: relatedID,
		CreatedAt: time.Now(),
	}

	if _, err := r.awards.InsertOne(ctx, award); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			total, terr := r.Total(ctx, pairID)
			if terr != nil {
				return false, 0, terr
			}
			r.logger.Info().
				Str("pair_id", pairID).
				Str("source", source).
				Str("related_id", relatedID).
				Msg("award_duplicate")
			return false, total, nil
		}
		return false, 0, err
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var totals model.PairPoints
	err := r.totals.FindOneAndUpdate(ctx,
		bson.M{"_id": pairID},
		bson.M{"$inc": bson.M{"total": amount}},
		opts,
	).Decode(&totals)
	if err != nil {
		return false, 0, err
	}

	r.logger.Info().
		Str("pair_id", pairID).
		Int("amount", amount).
		Str("related_id", relatedID).
		Int("new_total", totals.Total).
		Msg("award_credited")
	return true, totals.Total, nil
}

func (r *pointsRepo) Total(ctx context.Context, pairID string) (int, error) {
	var totals model.PairPoints
	err := r.totals.FindOne(ctx, bson.M{"_id": pairID}).Decode(&totals)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return totals.Total, nil
}
