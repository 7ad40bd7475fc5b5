package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/config"
	"linked/internal/game"
	"linked/internal/model"
	"linked/internal/repository"
)

// Loads puzzle definitions from the content directory, validates each one,
// and upserts them so the seeder is safe to re-run. Also creates a demo pair
// for local testing.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	puzzleRepo := repository.NewPuzzleRepo(db)
	pairRepo := repository.NewPairRepo(db)

	paths, err := filepath.Glob(filepath.Join(cfg.ContentDir, "*.json"))
	if err != nil {
		log.Fatalf("Failed to list content dir: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No puzzle files found in %s", cfg.ContentDir)
	}

	seeded := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}

		var puzzle model.Puzzle
		if err := json.Unmarshal(raw, &puzzle); err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}
		if puzzle.ActivityType == "" {
			puzzle.ActivityType = model.ActivityLinked
		}
		if err := game.Validate(&puzzle); err != nil {
			log.Fatalf("Invalid puzzle %s: %v", path, err)
		}

		if err := puzzleRepo.Upsert(ctx, &puzzle); err != nil {
			log.Fatalf("Failed to upsert puzzle %s: %v", puzzle.ID, err)
		}
		seeded++
	}

	// Demo pair for local testing
	demo := &model.Pair{
		ID:        "pair-demo",
		MemberIDs: [2]string{"alice", "bob"},
		CreatedAt: time.Now(),
	}
	existing, err := pairRepo.GetByID(ctx, demo.ID)
	if err != nil {
		log.Fatalf("Failed to look up demo pair: %v", err)
	}
	if existing == nil {
		if err := pairRepo.Create(ctx, demo); err != nil {
			log.Fatalf("Failed to create demo pair: %v", err)
		}
	}

	fmt.Printf("Seeded %d puzzles and demo pair '%s'\n", seeded, demo.ID)
}
