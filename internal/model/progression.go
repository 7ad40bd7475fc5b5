package model

import "time"

// BranchProgressionRecord tracks how many matches a pair has completed for an
// activity and which content branch is current. Created lazily on first
// completion; CurrentBranch is always TotalCompletions % BranchCount.
type BranchProgressionRecord struct {
	PairID           string    `json:"pairId" bson:"pairId"`
	ActivityType     string    `json:"activityType" bson:"activityType"`
	CurrentBranch    int       `json:"currentBranch" bson:"currentBranch"`
	TotalCompletions int       `json:"totalCompletions" bson:"totalCompletions"`
	BranchCount      int       `json:"branchCount" bson:"branchCount"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}
