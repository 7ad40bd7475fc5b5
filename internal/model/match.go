package model

import (
	"strconv"
	"time"
)

type MatchStatus string

const (
	MatchActive    MatchStatus = "active"
	MatchCompleted MatchStatus = "completed"
)

// Match is the mutable per-pair game state. BoardState maps answer-cell
// indices (as decimal strings, Mongo map keys must be strings) to the locked
// letter; entries are only ever added, never changed or removed.
type Match struct {
	ID                       string            `json:"id" bson:"_id"`
	PuzzleID                 string            `json:"puzzleId" bson:"puzzleId"`
	PairID                   string            `json:"pairId" bson:"pairId"`
	Participants             [2]string         `json:"participants" bson:"participants"`
	Status                   MatchStatus       `json:"status" bson:"status"`
	BoardState               map[string]string `json:"boardState" bson:"boardState"`
	CurrentRack              []string          `json:"currentRack" bson:"currentRack"`
	CurrentTurnParticipantID string            `json:"currentTurnParticipantId" bson:"currentTurnParticipantId"`
	Scores                   map[string]int    `json:"scores" bson:"scores"`
	HintsRemaining           map[string]int    `json:"hintsRemaining" bson:"hintsRemaining"`
	WinnerParticipantID      string            `json:"winnerParticipantId,omitempty" bson:"winnerParticipantId,omitempty"`
	LocalDate                string            `json:"localDate" bson:"localDate"`
	CreatedAt                time.Time         `json:"createdAt" bson:"createdAt"`
	CompletedAt              *time.Time        `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// CellKey converts a cell index to the string key used in BoardState.
func CellKey(index int) string {
	return strconv.Itoa(index)
}

// HasParticipant reports whether id is one of the two pair members playing
// this match.
func (m *Match) HasParticipant(id string) bool {
	return m.Participants[0] == id || m.Participants[1] == id
}

// OtherParticipant returns the partner of the given participant.
func (m *Match) OtherParticipant(id string) string {
	if m.Participants[0] == id {
		return m.Participants[1]
	}
	return m.Participants[0]
}
