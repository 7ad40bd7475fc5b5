package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"linked/internal/cache"
	"linked/internal/repository"
)

// PointsService exposes the shared pair ledger total, read through a short
// Redis cache since the rest of the product polls it often.
type PointsService struct {
	points repository.PointsRepo
	cache  cache.PointsCache
	logger zerolog.Logger
}

// NewPointsService creates a points service.
func NewPointsService(points repository.PointsRepo, cache cache.PointsCache, logger zerolog.Logger) *PointsService {
	return &PointsService{points: points, cache: cache, logger: logger}
}

// PairTotal returns the pair's accumulated point total.
func (s *PointsService) PairTotal(ctx context.Context, pairID string) (int, error) {
	if total, ok, err := s.cache.Get(ctx, pairID); err == nil && ok {
		return total, nil
	} else if err != nil {
		s.logger.Warn().Err(err).Str("pair_id", pairID).Msg("points_cache_read_failed")
	}

	total, err := s.points.Total(ctx, pairID)
	if err != nil {
		return 0, fmt.Errorf("load pair total: %w", err)
	}

	if err := s.cache.Set(ctx, pairID, total); err != nil {
		s.logger.Warn().Err(err).Str("pair_id", pairID).Msg("points_cache_write_failed")
	}
	return total, nil
}
