// Error types shared across services and handlers. Request-level failures are
// sentinels; errors carrying data (cooldown remaining, content defects) are
// structs with Unwrap-friendly formatting.
package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMatchNotFound        = errors.New("match not found")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrMatchAlreadyComplete = errors.New("match already complete")
	ErrNoHintsRemaining     = errors.New("no hints remaining")
	ErrPairNotFound         = errors.New("pair not found")
	ErrNotPairMember        = errors.New("participant is not a member of this pair")
	ErrMatchBusy            = errors.New("match is locked by another submission")
	ErrActiveMatchExists    = errors.New("pair already has an active match")
)

// CooldownActiveError blocks match creation until the post-completion timer
// elapses.
type CooldownActiveError struct {
	Remaining time.Duration
}

func (e CooldownActiveError) Error() string {
	return fmt.Sprintf("cooldown active, %s remaining", e.Remaining.Round(time.Second))
}

// ContentError marks a content/authoring defect (missing solution, dangling
// puzzle reference). Not user-actionable; surfaced as an opaque service error.
type ContentError struct {
	PuzzleID string
	Reason   string
}

func (e ContentError) Error() string {
	if e.PuzzleID == "" {
		return fmt.Sprintf("puzzle content error: %s", e.Reason)
	}
	return fmt.Sprintf("puzzle content error puzzle=%s: %s", e.PuzzleID, e.Reason)
}
