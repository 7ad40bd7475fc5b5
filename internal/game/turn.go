package game

import "linked/internal/model"

// Scoring constants: every correct placement is worth LetterPoints, and a
// word completed by the turn is worth WordBonusPerLetter times its length.
const (
	LetterPoints       = 10
	WordBonusPerLetter = 10
)

// TurnOutcome is the full effect of evaluating one turn against the hidden
// solution. Board and RemainingRack are the post-turn values; the caller's
// inputs are never mutated.
type TurnOutcome struct {
	Outcomes       []model.PlacementOutcome
	AcceptedCount  int
	Board          map[string]string
	RemainingRack  []string
	PointsEarned   int
	CompletedWords []model.CompletedWord
}

// EvaluateTurn applies partial-success semantics: placements are judged
// independently, correct ones lock their cell immediately, incorrect ones
// bounce without consuming the rack letter. Each rack letter can satisfy at
// most one accepted placement per turn.
func EvaluateTurn(p *model.Puzzle, board map[string]string, rack []string, placements []model.Placement) TurnOutcome {
	before := make(map[string]string, len(board))
	for k, v := range board {
		before[k] = v
	}
	after := make(map[string]string, len(board)+len(placements))
	for k, v := range board {
		after[k] = v
	}
	pool := append([]string(nil), rack...)

	out := TurnOutcome{Board: after}
	for _, pl := range placements {
		res := model.PlacementOutcome{CellIndex: pl.CellIndex, Letter: pl.Letter}

		switch {
		case CellKindAt(p, pl.CellIndex) != KindAnswer:
			res.Reason = model.RejectNotAnswerCell
		case hasKey(after, pl.CellIndex):
			res.Reason = model.RejectAlreadyLocked
		case !contains(pool, pl.Letter):
			res.Reason = model.RejectNotInRack
		case pl.Letter != p.SolutionGrid[pl.CellIndex]:
			res.Reason = model.RejectWrongLetter
		default:
			res.Accepted = true
			after[model.CellKey(pl.CellIndex)] = pl.Letter
			pool = consume(pool, pl.Letter)
			out.AcceptedCount++
		}
		out.Outcomes = append(out.Outcomes, res)
	}

	out.RemainingRack = pool
	out.PointsEarned, out.CompletedWords = scoreTurn(p, before, after, out.AcceptedCount)
	return out
}

// scoreTurn totals per-placement points plus a bonus for every word that is
// fully locked after the turn but was not before. Comparing locked-before
// against locked-after per word id is what prevents double counting, both
// within a turn and across turns.
func scoreTurn(p *model.Puzzle, before, after map[string]string, accepted int) (int, []model.CompletedWord) {
	points := accepted * LetterPoints

	var completed []model.CompletedWord
	for _, w := range Words(p) {
		if wordLocked(w, after) && !wordLocked(w, before) {
			points += WordBonusPerLetter * len(w.Cells)
			completed = append(completed, model.CompletedWord{WordID: w.ID, Length: len(w.Cells)})
		}
	}
	return points, completed
}

func hasKey(board map[string]string, idx int) bool {
	_, ok := board[model.CellKey(idx)]
	return ok
}

func contains(pool []string, letter string) bool {
	for _, l := range pool {
		if l == letter {
			return true
		}
	}
	return false
}

// consume removes one instance of letter from the pool.
func consume(pool []string, letter string) []string {
	for i, l := range pool {
		if l == letter {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
