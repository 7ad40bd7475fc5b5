package model

import "time"

// CellKind is the client-visible classification of a grid cell.
type CellKind string

const (
	KindClue   CellKind = "clue"
	KindVoid   CellKind = "void"
	KindAnswer CellKind = "answer"
)

// ClueInfo is the client-facing projection of a clue.
type ClueInfo struct {
	Type           string `json:"type"`
	Content        string `json:"content"`
	ArrowDirection string `json:"arrowDirection"`
	TargetIndex    int    `json:"targetIndex"`
}

// PuzzleView is the strict one-way projection of a Puzzle sent to clients.
// It carries the grid layout and clue text but never the solution array.
type PuzzleView struct {
	ID    string              `json:"id"`
	Rows  int                 `json:"rows"`
	Cols  int                 `json:"cols"`
	Cells []CellKind          `json:"cells"`
	Clues map[string]ClueInfo `json:"clues"` // keyed by clue-cell index as decimal string
}

// MatchView is the polling projection of a match. Same solution-hiding rule
// as PuzzleView: it is built from the authoritative records but is a separate
// serialization, never the stored object itself.
type MatchView struct {
	MatchID                  string            `json:"matchId"`
	Puzzle                   PuzzleView        `json:"puzzle"`
	Status                   MatchStatus       `json:"status"`
	BoardState               map[string]string `json:"boardState"`
	CurrentRack              []string          `json:"currentRack"`
	CurrentTurnParticipantID string            `json:"currentTurnParticipantId"`
	Scores                   map[string]int    `json:"scores"`
	HintsRemaining           map[string]int    `json:"hintsRemaining"`
	WinnerParticipantID      string            `json:"winnerParticipantId,omitempty"`
	CreatedAt                time.Time         `json:"createdAt"`
	CompletedAt              *time.Time        `json:"completedAt,omitempty"`
}

// TurnResult is the response to a turn submission. Placement outcomes are
// always returned in full so the client can animate correct/bounced tiles.
type TurnResult struct {
	Results               []PlacementOutcome `json:"results"`
	PointsEarned          int                `json:"pointsEarned"`
	CompletedWords        []CompletedWord    `json:"completedWords"`
	MatchComplete         bool               `json:"matchComplete"`
	NextRack              []string           `json:"nextRack,omitempty"`
	NextTurnParticipantID string             `json:"nextTurnParticipantId,omitempty"`
	WinnerParticipantID   string             `json:"winnerParticipantId,omitempty"`
	PairPointsCredited    bool               `json:"pairPointsCredited,omitempty"`
	PairPointsTotal       int                `json:"pairPointsTotal,omitempty"`
}

// HintResult is the response to a hint use.
type HintResult struct {
	ValidCells     []int `json:"validCells"`
	HintsRemaining int   `json:"hintsRemaining"`
}
