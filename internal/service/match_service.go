package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"linked/internal/cache"
	"linked/internal/game"
	"linked/internal/model"
	"linked/internal/repository"
)

// MatchService coordinates match lookup and creation: branch selection,
// puzzle choice, opening rack, and the turn-owner tiebreak.
type MatchService struct {
	pairs         repository.PairRepo
	puzzles       repository.PuzzleRepo
	matches       repository.MatchRepo
	moves         repository.MoveRepo
	progression   repository.ProgressionRepo
	cooldowns     cache.CooldownCache
	dealer        *game.Dealer
	hintAllowance int
	logger        zerolog.Logger
}

// NewMatchService creates a match service.
func NewMatchService(
	pairs repository.PairRepo,
	puzzles repository.PuzzleRepo,
	matches repository.MatchRepo,
	moves repository.MoveRepo,
	progression repository.ProgressionRepo,
	cooldowns cache.CooldownCache,
	dealer *game.Dealer,
	hintAllowance int,
	logger zerolog.Logger,
) *MatchService {
	return &MatchService{
		pairs:         pairs,
		puzzles:       puzzles,
		matches:       matches,
		moves:         moves,
		progression:   progression,
		cooldowns:     cooldowns,
		dealer:        dealer,
		hintAllowance: hintAllowance,
		logger:        logger,
	}
}

// GetOrCreateMatch returns the pair's active match, or creates one for the
// current branch when no match is active and the post-completion cooldown has
// elapsed. The returned view never contains the solution.
func (s *MatchService) GetOrCreateMatch(ctx context.Context, pairID, localDate string) (*model.MatchView, error) {
	pair, err := s.pairs.GetByID(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("load pair: %w", err)
	}
	if pair == nil {
		return nil, model.ErrPairNotFound
	}

	active, err := s.matches.GetActiveByPair(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("load active match: %w", err)
	}
	if active != nil {
		puzzle, err := s.loadPuzzle(ctx, active.PuzzleID)
		if err != nil {
			return nil, err
		}
		return buildMatchView(active, puzzle), nil
	}

	remaining, err := s.cooldowns.Remaining(ctx, pairID, model.ActivityLinked)
	if err != nil {
		return nil, fmt.Errorf("check cooldown: %w", err)
	}
	if remaining > 0 {
		return nil, model.CooldownActiveError{Remaining: remaining}
	}

	puzzle, err := s.selectPuzzle(ctx, pairID)
	if err != nil {
		return nil, err
	}

	starter := pair.Starter()
	match := &model.Match{
		ID:                       uuid.NewString(),
		PuzzleID:                 puzzle.ID,
		PairID:                   pairID,
		Participants:             pair.MemberIDs,
		Status:                   model.MatchActive,
		BoardState:               map[string]string{},
		CurrentRack:              s.dealer.Deal(puzzle, map[string]string{}),
		CurrentTurnParticipantID: starter,
		Scores: map[string]int{
			pair.MemberIDs[0]: 0,
			pair.MemberIDs[1]: 0,
		},
		HintsRemaining: map[string]int{
			pair.MemberIDs[0]: s.hintAllowance,
			pair.MemberIDs[1]: s.hintAllowance,
		},
		LocalDate: localDate,
		CreatedAt: time.Now(),
	}

	if err := s.matches.Create(ctx, match); err != nil {
		if errors.Is(err, model.ErrActiveMatchExists) {
			// The partner's concurrent call created the match first; serve
			// theirs instead of failing.
			existing, gerr := s.matches.GetActiveByPair(ctx, pairID)
			if gerr != nil || existing == nil {
				return nil, fmt.Errorf("reload raced match: %w", err)
			}
			racedPuzzle, perr := s.loadPuzzle(ctx, existing.PuzzleID)
			if perr != nil {
				return nil, perr
			}
			return buildMatchView(existing, racedPuzzle), nil
		}
		return nil, fmt.Errorf("create match: %w", err)
	}

	s.logger.Info().
		Str("match_id", match.ID).
		Str("pair_id", pairID).
		Str("puzzle_id", puzzle.ID).
		Str("starter", starter).
		Msg("match_created")

	return buildMatchView(match, puzzle), nil
}

// GetMatchState returns the polling projection of a match.
func (s *MatchService) GetMatchState(ctx context.Context, matchID string) (*model.MatchView, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if match == nil {
		return nil, model.ErrMatchNotFound
	}
	puzzle, err := s.loadPuzzle(ctx, match.PuzzleID)
	if err != nil {
		return nil, err
	}
	return buildMatchView(match, puzzle), nil
}

// ListMoves returns the append-only turn history of a match.
func (s *MatchService) ListMoves(ctx context.Context, matchID string) ([]*model.Move, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	if match == nil {
		return nil, model.ErrMatchNotFound
	}
	return s.moves.ListByMatch(ctx, matchID)
}

// selectPuzzle picks the next unplayed puzzle in the pair's current branch,
// wrapping to the start of the branch when every puzzle was already played.
func (s *MatchService) selectPuzzle(ctx context.Context, pairID string) (*model.Puzzle, error) {
	branch := 0
	record, err := s.progression.Get(ctx, pairID, model.ActivityLinked)
	if err != nil {
		return nil, fmt.Errorf("load progression: %w", err)
	}
	if record != nil {
		branch = record.CurrentBranch
	}

	candidates, err := s.puzzles.ListByBranch(ctx, model.ActivityLinked, branch)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	if len(candidates) == 0 {
		return nil, model.ContentError{Reason: fmt.Sprintf("no puzzles for branch %d", branch)}
	}

	playedIDs, err := s.matches.PlayedPuzzleIDs(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("list played puzzles: %w", err)
	}
	played := make(map[string]bool, len(playedIDs))
	for _, id := range playedIDs {
		played[id] = true
	}

	selected := candidates[0]
	for _, candidate := range candidates {
		if !played[candidate.ID] {
			selected = candidate
			break
		}
	}

	if err := game.Validate(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

// loadPuzzle fetches a puzzle a match refers to; a missing record is a
// content defect, not a user error.
func (s *MatchService) loadPuzzle(ctx context.Context, puzzleID string) (*model.Puzzle, error) {
	puzzle, err := s.puzzles.GetByID(ctx, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	if puzzle == nil {
		return nil, model.ContentError{PuzzleID: puzzleID, Reason: "match references nonexistent puzzle"}
	}
	return puzzle, nil
}
