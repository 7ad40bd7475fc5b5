package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"linked/internal/cache"
	"linked/internal/game"
	"linked/internal/model"
	"linked/internal/repository"
)

// HintService spends a participant's limited hint allowance to highlight
// valid target cells for the current rack. Board and rack are untouched;
// only the caller's counter decrements, so it runs under the match lock.
type HintService struct {
	matches repository.MatchRepo
	puzzles repository.PuzzleRepo
	locks   cache.MatchLock
	logger  zerolog.Logger
}

// NewHintService creates a hint service.
func NewHintService(matches repository.MatchRepo, puzzles repository.PuzzleRepo, locks cache.MatchLock, logger zerolog.Logger) *HintService {
	return &HintService{
		matches: matches,
		puzzles: puzzles,
		locks:   locks,
		logger:  logger,
	}
}

// UseHint returns every unfilled answer cell whose solution letter is in the
// current rack. The rack belongs to whoever's turn it is; the hint is only
// meaningful for that player, but either participant may spend one.
func (s *HintService) UseHint(ctx context.Context, matchID, participantID string) (*model.HintResult, error) {
	token, err := acquireMatchLock(ctx, s.locks, matchID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.locks.Release(ctx, matchID, token); err != nil {
			s.logger.Warn().Err(err).Str("match_id", matchID).Msg("lock_release_failed")
		}
	}()

	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if match == nil {
		return nil, model.ErrMatchNotFound
	}
	if match.Status == model.MatchCompleted {
		return nil, model.ErrMatchAlreadyComplete
	}
	if !match.HasParticipant(participantID) {
		return nil, model.ErrNotPairMember
	}
	if match.HintsRemaining[participantID] <= 0 {
		return nil, model.ErrNoHintsRemaining
	}

	puzzle, err := s.puzzles.GetByID(ctx, match.PuzzleID)
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, model.ContentError{PuzzleID: match.PuzzleID, Reason: "match references nonexistent puzzle"}
	}

	cells := game.HintCells(puzzle, match.BoardState, match.CurrentRack)
	if cells == nil {
		cells = []int{}
	}

	match.HintsRemaining[participantID]--
	if err := s.matches.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("persist match: %w", err)
	}

	s.logger.Info().
		Str("match_id", matchID).
		Str("participant_id", participantID).
		Int("valid_cells", len(cells)).
		Int("hints_remaining", match.HintsRemaining[participantID]).
		Msg("hint_used")

	return &model.HintResult{
		ValidCells:     cells,
		HintsRemaining: match.HintsRemaining[participantID],
	}, nil
}
