package service

import (
	"linked/internal/game"
	"linked/internal/model"
)

// buildMatchView projects authoritative match + puzzle records into the
// client-facing view. This is a one-way serialization: the solution array
// never crosses it, only cell kinds and clue text.
func buildMatchView(m *model.Match, p *model.Puzzle) *model.MatchView {
	pv := model.PuzzleView{
		ID:    p.ID,
		Rows:  p.Rows,
		Cols:  p.Cols,
		Cells: make([]model.CellKind, p.CellCount()),
		Clues: make(map[string]model.ClueInfo),
	}
	for idx := 0; idx < p.CellCount(); idx++ {
		switch game.CellKindAt(p, idx) {
		case game.KindClue:
			pv.Cells[idx] = model.KindClue
			if c := game.ClueAt(p, idx); c != nil {
				pv.Clues[model.CellKey(idx)] = model.ClueInfo{
					Type:           c.Type,
					Content:        c.Content,
					ArrowDirection: c.ArrowDirection,
					TargetIndex:    c.TargetIndex,
				}
			}
		case game.KindAnswer:
			pv.Cells[idx] = model.KindAnswer
		default:
			pv.Cells[idx] = model.KindVoid
		}
	}

	view := &model.MatchView{
		MatchID:                  m.ID,
		Puzzle:                   pv,
		Status:                   m.Status,
		BoardState:               make(map[string]string, len(m.BoardState)),
		CurrentRack:              append([]string{}, m.CurrentRack...),
		CurrentTurnParticipantID: m.CurrentTurnParticipantID,
		Scores:                   make(map[string]int, len(m.Scores)),
		HintsRemaining:           make(map[string]int, len(m.HintsRemaining)),
		WinnerParticipantID:      m.WinnerParticipantID,
		CreatedAt:                m.CreatedAt,
		CompletedAt:              m.CompletedAt,
	}
	for k, v := range m.BoardState {
		view.BoardState[k] = v
	}
	for k, v := range m.Scores {
		view.Scores[k] = v
	}
	for k, v := range m.HintsRemaining {
		view.HintsRemaining[k] = v
	}
	return view
}
