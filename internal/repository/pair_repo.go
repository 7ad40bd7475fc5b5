package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"linked/internal/model"
)

// PairRepo reads the pair roster. Pairs are owned by the account system; the
// engine never creates them outside of seeding.
type PairRepo interface {
	GetByID(ctx context.Context, id string) (*model.Pair, error)
	Create(ctx context.Context, pair *model.Pair) error
}

type pairRepo struct {
	collection *mongo.Collection
}

func NewPairRepo(db *mongo.Database) PairRepo {
	return &pairRepo{collection: db.Collection("pairs")}
}

func (r *pairRepo) GetByID(ctx context.Context, id string) (*model.Pair, error) {
	var pair model.Pair
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pair)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &pair, nil
}

func (r *pairRepo) Create(ctx context.Context, pair *model.Pair) error {
	_, err := r.collection.InsertOne(ctx, pair)
	return err
}
