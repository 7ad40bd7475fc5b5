package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/model"
)

// PuzzleRepo reads the immutable puzzle catalog. Puzzles are authored
// offline and written only by the seeder.
type PuzzleRepo interface {
	GetByID(ctx context.Context, id string) (*model.Puzzle, error)
	ListByBranch(ctx context.Context, activityType string, branch int) ([]*model.Puzzle, error)
	BranchCount(ctx context.Context, activityType string) (int, error)
	Upsert(ctx context.Context, puzzle *model.Puzzle) error
}

type puzzleRepo struct {
	collection *mongo.Collection
}

func NewPuzzleRepo(db *mongo.Database) PuzzleRepo {
	return &puzzleRepo{collection: db.Collection("puzzles")}
}

func (r *puzzleRepo) GetByID(ctx context.Context, id string) (*model.Puzzle, error) {
	var puzzle model.Puzzle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&puzzle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &puzzle, nil
}

func (r *puzzleRepo) ListByBranch(ctx context.Context, activityType string, branch int) ([]*model.Puzzle, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"activityType": activityType, "branch": branch},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var puzzles []*model.Puzzle
	if err = cursor.All(ctx, &puzzles); err != nil {
		return nil, err
	}
	return puzzles, nil
}

func (r *puzzleRepo) BranchCount(ctx context.Context, activityType string) (int, error) {
	branches, err := r.collection.Distinct(ctx, "branch", bson.M{"activityType": activityType})
	if err != nil {
		return 0, err
	}
	return len(branches), nil
}

func (r *puzzleRepo) Upsert(ctx context.Context, puzzle *model.Puzzle) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": puzzle.ID},
		puzzle,
		options.Replace().SetUpsert(true),
	)
	return err
}
