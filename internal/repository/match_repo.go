package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"linked/internal/model"
)

// MatchRepo persists match state. Updates replace the whole document; writes
// are serialized by the per-match Redis lock held in the turn service, so the
// repo itself stays simple.
type MatchRepo interface {
	Create(ctx context.Context, match *model.Match) error
	GetByID(ctx context.Context, id string) (*model.Match, error)
	GetActiveByPair(ctx context.Context, pairID string) (*model.Match, error)
	Update(ctx context.Context, match *model.Match) error
	PlayedPuzzleIDs(ctx context.Context, pairID string) ([]string, error)
}

type matchRepo struct {
	collection *mongo.Collection
}

func NewMatchRepo(db *mongo.Database) MatchRepo {
	return &matchRepo{collection: db.Collection("matches")}
}

func (r *matchRepo) Create(ctx context.Context, match *model.Match) error {
	_, err := r.collection.InsertOne(ctx, match)
	if mongo.IsDuplicateKeyError(err) {
		// Lost a race against the partial unique (pairId, active) index.
		return model.ErrActiveMatchExists
	}
	return err
}

func (r *matchRepo) GetByID(ctx context.Context, id string) (*model.Match, error) {
	var match model.Match
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepo) GetActiveByPair(ctx context.Context, pairID string) (*model.Match, error) {
	var match model.Match
	err := r.collection.FindOne(ctx, bson.M{
		"pairId": pairID,
		"status": model.MatchActive,
	}).Decode(&match)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepo) Update(ctx context.Context, match *model.Match) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": match.ID}, match)
	return err
}

func (r *matchRepo) PlayedPuzzleIDs(ctx context.Context, pairID string) ([]string, error) {
	ids, err := r.collection.Distinct(ctx, "puzzleId", bson.M{"pairId": pairID})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := id.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}
