package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"linked/internal/cache"
	"linked/internal/game"
	"linked/internal/model"
	"linked/internal/repository"
)

/* ----------------------------- puzzle fixtures ---------------------------- */

// dripPuzzle: 3x5 grid, one across word DRIP at cells 6-9, clue cell at 5.
func dripPuzzle() *model.Puzzle {
	return &model.Puzzle{
		ID:           "drip-1",
		ActivityType: model.ActivityLinked,
		Branch:       0,
		Rows:         3,
		Cols:         5,
		SolutionGrid: []string{
			"#", "#", "#", "#", "#",
			"#", "D", "R", "I", "P",
			"#", "#", "#", "#", "#",
		},
		ClueMarkers: []int{
			0, 0, 0, 0, 0,
			1, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
		},
		Clues: map[string]model.Clue{
			"1": {Type: "text", Content: "Falls in drops", ArrowDirection: "right", TargetIndex: 6},
		},
	}
}

// crossPuzzle adds a down word RA (cells 7 and 12) to dripPuzzle.
func crossPuzzle() *model.Puzzle {
	p := dripPuzzle()
	p.ID = "cross-1"
	p.SolutionGrid[12] = "A"
	p.ClueMarkers[2] = 2
	p.Clues["2"] = model.Clue{Type: "text", Content: "Egyptian sun god", ArrowDirection: "down", TargetIndex: 7}
	return p
}

/* ------------------------------ in-memory repos --------------------------- */

type fakePairRepo struct {
	pairs map[string]*model.Pair
}

func (r *fakePairRepo) GetByID(_ context.Context, id string) (*model.Pair, error) {
	return r.pairs[id], nil
}

func (r *fakePairRepo) Create(_ context.Context, pair *model.Pair) error {
	r.pairs[pair.ID] = pair
	return nil
}

type fakePuzzleRepo struct {
	puzzles map[string]*model.Puzzle
}

func (r *fakePuzzleRepo) GetByID(_ context.Context, id string) (*model.Puzzle, error) {
	return r.puzzles[id], nil
}

func (r *fakePuzzleRepo) ListByBranch(_ context.Context, activityType string, branch int) ([]*model.Puzzle, error) {
	var out []*model.Puzzle
	for _, p := range r.puzzles {
		if p.ActivityType == activityType && p.Branch == branch {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePuzzleRepo) BranchCount(_ context.Context, activityType string) (int, error) {
	branches := map[int]bool{}
	for _, p := range r.puzzles {
		if p.ActivityType == activityType {
			branches[p.Branch] = true
		}
	}
	return len(branches), nil
}

func (r *fakePuzzleRepo) Upsert(_ context.Context, puzzle *model.Puzzle) error {
	r.puzzles[puzzle.ID] = puzzle
	return nil
}

type fakeMatchRepo struct {
	matches map[string]*model.Match
}

func copyMatch(m *model.Match) *model.Match {
	c := *m
	c.BoardState = make(map[string]string, len(m.BoardState))
	for k, v := range m.BoardState {
		c.BoardState[k] = v
	}
	c.CurrentRack = append([]string(nil), m.CurrentRack...)
	c.Scores = make(map[string]int, len(m.Scores))
	for k, v := range m.Scores {
		c.Scores[k] = v
	}
	c.HintsRemaining = make(map[string]int, len(m.HintsRemaining))
	for k, v := range m.HintsRemaining {
		c.HintsRemaining[k] = v
	}
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

func (r *fakeMatchRepo) Create(_ context.Context, match *model.Match) error {
	r.matches[match.ID] = copyMatch(match)
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id string) (*model.Match, error) {
	m, ok := r.matches[id]
	if !ok {
		return nil, nil
	}
	return copyMatch(m), nil
}

func (r *fakeMatchRepo) GetActiveByPair(_ context.Context, pairID string) (*model.Match, error) {
	for _, m := range r.matches {
		if m.PairID == pairID && m.Status == model.MatchActive {
			return copyMatch(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, match *model.Match) error {
	r.matches[match.ID] = copyMatch(match)
	return nil
}

func (r *fakeMatchRepo) PlayedPuzzleIDs(_ context.Context, pairID string) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, m := range r.matches {
		if m.PairID == pairID && !seen[m.PuzzleID] {
			seen[m.PuzzleID] = true
			ids = append(ids, m.PuzzleID)
		}
	}
	return ids, nil
}

type fakeMoveRepo struct {
	moves []*model.Move
}

func (r *fakeMoveRepo) Create(_ context.Context, move *model.Move) error {
	if move.CreatedAt.IsZero() {
		move.CreatedAt = time.Now()
	}
	r.moves = append(r.moves, move)
	return nil
}

func (r *fakeMoveRepo) ListByMatch(_ context.Context, matchID string) ([]*model.Move, error) {
	var out []*model.Move
	for _, m := range r.moves {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProgressionRepo struct {
	records map[string]*model.BranchProgressionRecord
}

func progressionKey(pairID, activityType string) string {
	return pairID + ":" + activityType
}

func (r *fakeProgressionRepo) Get(_ context.Context, pairID, activityType string) (*model.BranchProgressionRecord, error) {
	return r.records[progressionKey(pairID, activityType)], nil
}

func (r *fakeProgressionRepo) IncrementCompletion(_ context.Context, pairID, activityType string, branchCount int) (*model.BranchProgressionRecord, error) {
	if branchCount < 1 {
		branchCount = 1
	}
	key := progressionKey(pairID, activityType)
	rec, ok := r.records[key]
	if !ok {
		rec = &model.BranchProgressionRecord{PairID: pairID, ActivityType: activityType}
		r.records[key] = rec
	}
	rec.TotalCompletions++
	rec.BranchCount = branchCount
	rec.CurrentBranch = rec.TotalCompletions % rec.BranchCount
	rec.UpdatedAt = time.Now()
	return rec, nil
}

type fakePointsRepo struct {
	awards map[string]model.PointAward
	totals map[string]int
}

func (r *fakePointsRepo) Award(_ context.Context, pairID string, amount int, source, relatedID string) (bool, int, error) {
	key := source + ":" + relatedID
	if _, exists := r.awards[key]; exists {
		return false, r.totals[pairID], nil
	}
	r.awards[key] = model.PointAward{
		PairID: pairID, Amount: amount, Source: source, RelatedID: relatedID, CreatedAt: time.Now(),
	}
	r.totals[pairID] += amount
	return true, r.totals[pairID], nil
}

func (r *fakePointsRepo) Total(_ context.Context, pairID string) (int, error) {
	return r.totals[pairID], nil
}

/* -------------------------------- test env -------------------------------- */

const (
	testReward   = 100
	testCooldown = 30 * time.Minute
	testHints    = 2
)

type testEnv struct {
	pairs       *fakePairRepo
	puzzles     *fakePuzzleRepo
	matches     *fakeMatchRepo
	moves       *fakeMoveRepo
	progression *fakeProgressionRepo
	points      *fakePointsRepo
	locks       cache.MatchLock
	cooldowns   cache.CooldownCache
	pointsCache cache.PointsCache
	redis       *miniredis.Miniredis

	matchSvc  *MatchService
	turnSvc   *TurnService
	hintSvc   *HintService
	pointsSvc *PointsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	env := &testEnv{
		pairs:       &fakePairRepo{pairs: map[string]*model.Pair{}},
		puzzles:     &fakePuzzleRepo{puzzles: map[string]*model.Puzzle{}},
		matches:     &fakeMatchRepo{matches: map[string]*model.Match{}},
		moves:       &fakeMoveRepo{},
		progression: &fakeProgressionRepo{records: map[string]*model.BranchProgressionRecord{}},
		points:      &fakePointsRepo{awards: map[string]model.PointAward{}, totals: map[string]int{}},
		locks:       cache.NewMatchLock(client),
		cooldowns:   cache.NewCooldownCache(client),
		pointsCache: cache.NewPointsCache(client),
		redis:       mr,
	}

	logger := zerolog.Nop()
	dealer := game.NewSeededDealer(5, 99)

	env.matchSvc = NewMatchService(env.pairs, env.puzzles, env.matches, env.moves,
		env.progression, env.cooldowns, dealer, testHints, logger)
	env.turnSvc = NewTurnService(env.matches, env.puzzles, env.moves, env.progression,
		env.points, env.locks, env.cooldowns, env.pointsCache, dealer,
		testReward, testCooldown, logger)
	env.hintSvc = NewHintService(env.matches, env.puzzles, env.locks, logger)
	env.pointsSvc = NewPointsService(env.points, env.pointsCache, logger)

	return env
}

func (e *testEnv) addPair(id, a, b string) {
	e.pairs.pairs[id] = &model.Pair{ID: id, MemberIDs: [2]string{a, b}, CreatedAt: time.Now()}
}

func (e *testEnv) addMatch(m *model.Match) {
	e.matches.matches[m.ID] = copyMatch(m)
}

// activeMatch builds a match in a known state, bypassing creation so tests
// control the rack exactly.
func activeMatch(id, puzzleID string) *model.Match {
	return &model.Match{
		ID:                       id,
		PuzzleID:                 puzzleID,
		PairID:                   "pair1",
		Participants:             [2]string{"alice", "bob"},
		Status:                   model.MatchActive,
		BoardState:               map[string]string{},
		CurrentTurnParticipantID: "alice",
		Scores:                   map[string]int{"alice": 0, "bob": 0},
		HintsRemaining:           map[string]int{"alice": testHints, "bob": testHints},
		CreatedAt:                time.Now(),
	}
}

var (
	_ repository.PairRepo        = (*fakePairRepo)(nil)
	_ repository.PuzzleRepo      = (*fakePuzzleRepo)(nil)
	_ repository.MatchRepo       = (*fakeMatchRepo)(nil)
	_ repository.MoveRepo        = (*fakeMoveRepo)(nil)
	_ repository.ProgressionRepo = (*fakeProgressionRepo)(nil)
	_ repository.PointsRepo      = (*fakePointsRepo)(nil)
)
