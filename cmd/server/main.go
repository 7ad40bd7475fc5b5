package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"linked/internal/cache"
	"linked/internal/config"
	"linked/internal/game"
	"linked/internal/repository"
	"linked/internal/service"
	"linked/internal/transport/rest"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo_connect_failed")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("mongo_ping_failed")
	}
	logger.Info().Msg("mongo_connected")

	db := mongoClient.Database(cfg.MongoDB)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("ensure_indexes_failed")
	}

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisURI, "redis://")
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal().Err(err).Msg("redis_ping_failed")
	}
	logger.Info().Msg("redis_connected")

	// Repositories
	pairRepo := repository.NewPairRepo(db)
	puzzleRepo := repository.NewPuzzleRepo(db)
	matchRepo := repository.NewMatchRepo(db)
	moveRepo := repository.NewMoveRepo(db)
	progressionRepo := repository.NewProgressionRepo(db)
	pointsRepo := repository.NewPointsRepo(db, logger)

	// Caches
	matchLock := cache.NewMatchLock(rdb)
	cooldowns := cache.NewCooldownCache(rdb)
	pointsCache := cache.NewPointsCache(rdb)

	// Services
	dealer := game.NewDealer(cfg.RackSize)
	matchSvc := service.NewMatchService(pairRepo, puzzleRepo, matchRepo, moveRepo,
		progressionRepo, cooldowns, dealer, cfg.HintAllowance, logger)
	turnSvc := service.NewTurnService(matchRepo, puzzleRepo, moveRepo, progressionRepo,
		pointsRepo, matchLock, cooldowns, pointsCache, dealer,
		cfg.CompletionReward, cfg.Cooldown, logger)
	hintSvc := service.NewHintService(matchRepo, puzzleRepo, matchLock, logger)
	pointsSvc := service.NewPointsService(pointsRepo, pointsCache, logger)

	router := rest.NewRouter(&rest.Container{
		MatchService:  matchSvc,
		TurnService:   turnSvc,
		HintService:   hintSvc,
		PointsService: pointsSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server_starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen_failed")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("forced_shutdown")
	}

	logger.Info().Msg("server_exited")
}
