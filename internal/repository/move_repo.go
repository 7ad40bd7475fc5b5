package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/model"
)

// MoveRepo appends turn audit records. Moves are never updated or deleted.
type MoveRepo interface {
	Create(ctx context.Context, move *model.Move) error
	ListByMatch(ctx context.Context, matchID string) ([]*model.Move, error)
}

type moveRepo struct {
	collection *mongo.Collection
}

func NewMoveRepo(db *mongo.Database) MoveRepo {
	return &moveRepo{collection: db.Collection("moves")}
}

func (r *moveRepo) Create(ctx context.Context, move *model.Move) error {
	if move.ID == "" {
		move.ID = uuid.NewString()
	}
	if move.CreatedAt.IsZero() {
		move.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, move)
	return err
}

func (r *moveRepo) ListByMatch(ctx context.Context, matchID string) ([]*model.Move, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"matchId": matchID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var moves []*model.Move
	if err = cursor.All(ctx, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}
