package game

import "linked/internal/model"

// HintCells returns every unfilled answer cell whose solution letter is
// present in the current rack. Read-only: the hint highlights valid targets
// without touching board or rack.
func HintCells(p *model.Puzzle, board map[string]string, rack []string) []int {
	available := make(map[string]int, len(rack))
	for _, l := range rack {
		available[l]++
	}

	var cells []int
	for _, idx := range AnswerCells(p) {
		if _, filled := board[model.CellKey(idx)]; filled {
			continue
		}
		if available[p.SolutionGrid[idx]] > 0 {
			cells = append(cells, idx)
		}
	}
	return cells
}
