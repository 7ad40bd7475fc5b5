package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"linked/internal/cache"
	"linked/internal/game"
	"linked/internal/model"
	"linked/internal/repository"
)

// TurnService validates and applies turn submissions. The whole
// validate-and-write cycle runs under the exclusive per-match lock so a stale
// retry arriving after a legitimate submission cannot double-apply.
type TurnService struct {
	matches          repository.MatchRepo
	puzzles          repository.PuzzleRepo
	moves            repository.MoveRepo
	progression      repository.ProgressionRepo
	points           repository.PointsRepo
	locks            cache.MatchLock
	cooldowns        cache.CooldownCache
	pointsCache      cache.PointsCache
	dealer           *game.Dealer
	completionReward int
	cooldownDuration time.Duration
	logger           zerolog.Logger
}

// NewTurnService creates a turn service.
func NewTurnService(
	matches repository.MatchRepo,
	puzzles repository.PuzzleRepo,
	moves repository.MoveRepo,
	progression repository.ProgressionRepo,
	points repository.PointsRepo,
	locks cache.MatchLock,
	cooldowns cache.CooldownCache,
	pointsCache cache.PointsCache,
	dealer *game.Dealer,
	completionReward int,
	cooldownDuration time.Duration,
	logger zerolog.Logger,
) *TurnService {
	return &TurnService{
		matches:          matches,
		puzzles:          puzzles,
		moves:            moves,
		progression:      progression,
		points:           points,
		locks:            locks,
		cooldowns:        cooldowns,
		pointsCache:      pointsCache,
		dealer:           dealer,
		completionReward: completionReward,
		cooldownDuration: cooldownDuration,
		logger:           logger,
	}
}

// SubmitTurn applies a turn with partial-success semantics: correct
// placements lock immediately, incorrect ones bounce back to the rack. If at
// least one placement is accepted the rack is re-dealt and the turn flips;
// a fully rejected turn leaves rack and ownership unchanged so the player
// can resubmit.
func (s *TurnService) SubmitTurn(ctx context.Context, matchID, participantID string, placements []model.Placement) (*model.TurnResult, error) {
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
	if match.CurrentTurnParticipantID != participantID {
		return nil, model.ErrNotYourTurn
	}

	puzzle, err := s.puzzles.GetByID(ctx, match.PuzzleID)
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, model.ContentError{PuzzleID: match.PuzzleID, Reason: "match references nonexistent puzzle"}
	}
	if err := game.Validate(puzzle); err != nil {
		return nil, err
	}

	out := game.EvaluateTurn(puzzle, match.BoardState, match.CurrentRack, placements)

	match.BoardState = out.Board
	match.Scores[participantID] += out.PointsEarned

	s.recordMove(ctx, match.ID, participantID, placements, out)

	result := &model.TurnResult{
		Results:        out.Outcomes,
		PointsEarned:   out.PointsEarned,
		CompletedWords: out.CompletedWords,
	}
	if result.CompletedWords == nil {
		result.CompletedWords = []model.CompletedWord{}
	}

	switch {
	case game.IsComplete(puzzle, match.BoardState):
		if err := s.completeMatch(ctx, match, puzzle, result); err != nil {
			return nil, err
		}
	case out.AcceptedCount > 0:
		match.CurrentRack = s.dealer.Deal(puzzle, match.BoardState)
		match.CurrentTurnParticipantID = match.OtherParticipant(participantID)
		result.NextRack = match.CurrentRack
		result.NextTurnParticipantID = match.CurrentTurnParticipantID
	default:
		// Nothing accepted: same rack, same owner, player may resubmit.
		match.CurrentRack = out.RemainingRack
		result.NextRack = match.CurrentRack
		result.NextTurnParticipantID = participantID
	}

	if err := s.matches.Update(ctx, match); err != nil {
		return nil, fmt.Errorf("persist match: %w", err)
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Str("participant_id", participantID).
		Int("accepted", out.AcceptedCount).
		Int("points", out.PointsEarned).
		Bool("complete", result.MatchComplete).
		Msg("turn_submitted")

	return result, nil
}

// completeMatch runs the completion transition: winner, idempotent reward,
// branch progression, cooldown. The award is issued before the completed
// match state is persisted; if the process dies in between, the retried turn
// re-runs the award and it no-ops on the uniqueness key.
func (s *TurnService) completeMatch(ctx context.Context, match *model.Match, puzzle *model.Puzzle, result *model.TurnResult) error {
	now := time.Now()
	match.Status = model.MatchCompleted
	match.CompletedAt = &now
	match.CurrentRack = nil
	match.WinnerParticipantID = winner(match)

	credited, total, err := s.points.Award(ctx, match.PairID, s.completionReward, model.SourceMatchComplete, match.ID)
	if err != nil {
		return fmt.Errorf("award points: %w", err)
	}
	if err := s.pointsCache.Invalidate(ctx, match.PairID); err != nil {
		s.logger.Warn().Err(err).Str("pair_id", match.PairID).Msg("points_cache_invalidate_failed")
	}

	branchCount, err := s.puzzles.BranchCount(ctx, puzzle.ActivityType)
	if err != nil {
		return fmt.Errorf("count branches: %w", err)
	}
	if _, err := s.progression.IncrementCompletion(ctx, match.PairID, puzzle.ActivityType, branchCount); err != nil {
		return fmt.Errorf("advance progression: %w", err)
	}

	if err := s.cooldowns.Start(ctx, match.PairID, puzzle.ActivityType, s.cooldownDuration); err != nil {
		s.logger.Warn().Err(err).Str("pair_id", match.PairID).Msg("cooldown_start_failed")
	}

	result.MatchComplete = true
	result.WinnerParticipantID = match.WinnerParticipantID
	result.PairPointsCredited = credited
	result.PairPointsTotal = total

	s.logger.Info().
		Str("match_id", match.ID).
		Str("pair_id", match.PairID).
		Str("winner", match.WinnerParticipantID).
		Bool("credited", credited).
		Msg("match_completed")
	return nil
}

// winner picks the higher-scoring participant; a tie is an explicit draw and
// returns the empty string.
func winner(match *model.Match) string {
	a, b := match.Participants[0], match.Participants[1]
	switch {
	case match.Scores[a] > match.Scores[b]:
		return a
	case match.Scores[b] > match.Scores[a]:
		return b
	default:
		return ""
	}
}

// recordMove appends the audit record. Audit failures are logged, not
// surfaced: the turn itself already happened.
func (s *TurnService) recordMove(ctx context.Context, matchID, participantID string, placements []model.Placement, out game.TurnOutcome) {
	move := &model.Move{
		MatchID:        matchID,
		ParticipantID:  participantID,
		Placements:     placements,
		Outcomes:       out.Outcomes,
		PointsEarned:   out.PointsEarned,
		CompletedWords: out.CompletedWords,
	}
	if err := s.moves.Create(ctx, move); err != nil {
		s.logger.Warn().Err(err).Str("match_id", matchID).Msg("move_audit_failed")
	}
}
