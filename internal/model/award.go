package model

import "time"

// SourceMatchComplete is the award source tag for a completed match.
const SourceMatchComplete = "match_complete"

// PointAward is the audit row for a single ledger credit. The combination
// (Source, RelatedID) carries a unique index, which is what makes the award
// path idempotent under retries.
type PointAward struct {
	ID        string    `json:"id" bson:"_id"`
	PairID    string    `json:"pairId" bson:"pairId"`
	Amount    int       `json:"amount" bson:"amount"`
	Source    string    `json:"source" bson:"source"`
	RelatedID string    `json:"relatedId" bson:"relatedId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PairPoints is the running point total for a pair, shared with the rest of
// the product.
type PairPoints struct {
	PairID string `json:"pairId" bson:"_id"`
	Total  int    `json:"total" bson:"total"`
}
