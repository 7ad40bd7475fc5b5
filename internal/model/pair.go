package model

import "time"

// Pair is the fixed two-participant unit that shares matches and a point
// ledger. Pairs are created by the account/profile system; the engine only
// reads them.
type Pair struct {
	ID                 string    `json:"id" bson:"_id"`
	MemberIDs          [2]string `json:"memberIds" bson:"memberIds"`
	PreferredStarterID string    `json:"preferredStarterId,omitempty" bson:"preferredStarterId,omitempty"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

// HasMember reports whether id belongs to this pair.
func (p *Pair) HasMember(id string) bool {
	return p.MemberIDs[0] == id || p.MemberIDs[1] == id
}

// Starter returns the participant who opens a new match: the stored
// preference when set, otherwise the lexicographically smaller member id.
func (p *Pair) Starter() string {
	if p.PreferredStarterID != "" && p.HasMember(p.PreferredStarterID) {
		return p.PreferredStarterID
	}
	if p.MemberIDs[0] < p.MemberIDs[1] {
		return p.MemberIDs[0]
	}
	return p.MemberIDs[1]
}
