package model

import "time"

// Placement is a single proposed letter placement within a turn.
type Placement struct {
	CellIndex int    `json:"cellIndex" bson:"cellIndex"`
	Letter    string `json:"letter" bson:"letter"`
}

// Rejection reasons recorded per placement outcome.
const (
	RejectNotAnswerCell = "not_an_answer_cell"
	RejectAlreadyLocked = "cell_already_locked"
	RejectNotInRack     = "letter_not_in_rack"
	RejectWrongLetter   = "wrong_letter"
)

// PlacementOutcome is the per-cell result of evaluating one placement.
type PlacementOutcome struct {
	CellIndex int    `json:"cellIndex" bson:"cellIndex"`
	Letter    string `json:"letter" bson:"letter"`
	Accepted  bool   `json:"accepted" bson:"accepted"`
	Reason    string `json:"reason,omitempty" bson:"reason,omitempty"`
}

// CompletedWord identifies a word fully locked by a turn.
type CompletedWord struct {
	WordID string `json:"wordId" bson:"wordId"`
	Length int    `json:"length" bson:"length"`
}

// Move is an append-only audit record of one submitted turn. Never mutated.
type Move struct {
	ID             string             `json:"id" bson:"_id"`
	MatchID        string             `json:"matchId" bson:"matchId"`
	ParticipantID  string             `json:"participantId" bson:"participantId"`
	Placements     []Placement        `json:"placements" bson:"placements"`
	Outcomes       []PlacementOutcome `json:"outcomes" bson:"outcomes"`
	PointsEarned   int                `json:"pointsEarned" bson:"pointsEarned"`
	CompletedWords []CompletedWord    `json:"completedWords,omitempty" bson:"completedWords,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}
