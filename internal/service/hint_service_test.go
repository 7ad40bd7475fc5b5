package service

import (
	"context"
	"errors"
	"testing"

	"linked/internal/model"
)

func TestUseHint(t *testing.T) {
	env := newTestEnv(t)
	env.puzzles.puzzles["cross-1"] = crossPuzzle()
	m := activeMatch("m1", "cross-1")
	m.BoardState = map[string]string{model.CellKey(6): "D"}
	m.CurrentRack = []string{"R"}
	env.addMatch(m)
	ctx := context.Background()

	res, err := env.hintSvc.UseHint(ctx, "m1", "alice")
	if err != nil {
		t.Fatalf("UseHint: %v", err)
	}
	if len(res.ValidCells) != 1 || res.ValidCells[0] != 7 {
		t.Fatalf("valid cells = %v, want [7]", res.ValidCells)
	}
	if res.HintsRemaining != testHints-1 {
		t.Fatalf("hints remaining = %d, want %d", res.HintsRemaining, testHints-1)
	}

	// Read-only with respect to board and rack.
	stored, _ := env.matches.GetByID(ctx, "m1")
	if len(stored.BoardState) != 1 || len(stored.CurrentRack) != 1 {
		t.Fatalf("hint mutated board or rack: %+v", stored)
	}
	// The partner's allowance is untouched.
	if stored.HintsRemaining["bob"] != testHints {
		t.Fatalf("bob hints = %d, want %d", stored.HintsRemaining["bob"], testHints)
	}
}

func TestUseHintExhausted(t *testing.T) {
	env := newTestEnv(t)
	env.puzzles.puzzles["drip-1"] = dripPuzzle()
	m := activeMatch("m1", "drip-1")
	m.CurrentRack = []string{"D"}
	m.HintsRemaining = map[string]int{"alice": 1, "bob": testHints}
	env.addMatch(m)
	ctx := context.Background()

	if _, err := env.hintSvc.UseHint(ctx, "m1", "alice"); err != nil {
		t.Fatalf("first hint: %v", err)
	}
	_, err := env.hintSvc.UseHint(ctx, "m1", "alice")
	if !errors.Is(err, model.ErrNoHintsRemaining) {
		t.Fatalf("expected ErrNoHintsRemaining, got %v", err)
	}

	// No mutation on the rejected call.
	stored, _ := env.matches.GetByID(ctx, "m1")
	if stored.HintsRemaining["alice"] != 0 {
		t.Fatalf("alice hints = %d, want 0", stored.HintsRemaining["alice"])
	}
}

func TestUseHintMatchNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.hintSvc.UseHint(context.Background(), "ghost", "alice")
	if !errors.Is(err, model.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}
