// Package game holds the pure puzzle engine: cell-kind resolution, governing
// clue lookup, word-run extraction, rack dealing, and turn evaluation. It has
// no storage or transport dependencies so every rule is unit-testable.
package game

import (
	"strconv"
	"unicode/utf8"

	"linked/internal/model"
)

// CellKind classifies a grid cell.
type CellKind int

const (
	KindVoid CellKind = iota
	KindClue
	KindAnswer
)

// CellKindAt resolves the kind of the cell at idx. Clue markers take
// precedence over the solution grid.
func CellKindAt(p *model.Puzzle, idx int) CellKind {
	if idx < 0 || idx >= p.CellCount() {
		return KindVoid
	}
	if p.ClueMarkers[idx] != 0 {
		return KindClue
	}
	if p.SolutionGrid[idx] == model.VoidCell {
		return KindVoid
	}
	return KindAnswer
}

// ClueAt returns the clue for a clue cell, or nil for any other cell.
func ClueAt(p *model.Puzzle, idx int) *model.Clue {
	if idx < 0 || idx >= p.CellCount() || p.ClueMarkers[idx] == 0 {
		return nil
	}
	c, ok := p.Clues[strconv.Itoa(p.ClueMarkers[idx])]
	if !ok {
		return nil
	}
	return &c
}

// SolutionLetter returns the correct letter of an answer cell, or "" if the
// cell is not an answer cell.
func SolutionLetter(p *model.Puzzle, idx int) string {
	if CellKindAt(p, idx) != KindAnswer {
		return ""
	}
	return p.SolutionGrid[idx]
}

// AnswerCells lists every answer-cell index in grid order.
func AnswerCells(p *model.Puzzle) []int {
	var cells []int
	for idx := 0; idx < p.CellCount(); idx++ {
		if CellKindAt(p, idx) == KindAnswer {
			cells = append(cells, idx)
		}
	}
	return cells
}

// TotalAnswerCells counts the cells a finished board must cover.
func TotalAnswerCells(p *model.Puzzle) int {
	return len(AnswerCells(p))
}

// IsComplete reports whether the board covers every answer cell.
func IsComplete(p *model.Puzzle, board map[string]string) bool {
	return len(board) >= TotalAnswerCells(p)
}

// GoverningClues walks left within the row and up within the column from an
// answer cell until a clue cell, a void cell, or the grid edge is found,
// yielding the across and down clues governing that cell. Either result may
// be nil. Cost is O(distance to the nearest clue) in each direction.
func GoverningClues(p *model.Puzzle, idx int) (across, down *model.Clue) {
	if CellKindAt(p, idx) != KindAnswer {
		return nil, nil
	}
	row, col := idx/p.Cols, idx%p.Cols

	for c := col - 1; c >= 0; c-- {
		k := CellKindAt(p, p.Index(row, c))
		if k == KindClue {
			across = ClueAt(p, p.Index(row, c))
			break
		}
		if k == KindVoid {
			break
		}
	}
	for r := row - 1; r >= 0; r-- {
		k := CellKindAt(p, p.Index(r, col))
		if k == KindClue {
			down = ClueAt(p, p.Index(r, col))
			break
		}
		if k == KindVoid {
			break
		}
	}
	return across, down
}

// Validate checks a puzzle record for content defects before it is played.
func Validate(p *model.Puzzle) error {
	if p.Rows < 2 || p.Cols < 2 {
		return model.ContentError{PuzzleID: p.ID, Reason: "grid must be at least 2x2"}
	}
	if len(p.SolutionGrid) != p.CellCount() {
		return model.ContentError{PuzzleID: p.ID, Reason: "solution grid length does not match dimensions"}
	}
	if len(p.ClueMarkers) != p.CellCount() {
		return model.ContentError{PuzzleID: p.ID, Reason: "clue marker array length does not match dimensions"}
	}
	answers := 0
	for idx := 0; idx < p.CellCount(); idx++ {
		switch CellKindAt(p, idx) {
		case KindClue:
			if _, ok := p.Clues[strconv.Itoa(p.ClueMarkers[idx])]; !ok {
				return model.ContentError{PuzzleID: p.ID, Reason: "clue marker references missing clue at cell " + strconv.Itoa(idx)}
			}
		case KindAnswer:
			if idx/p.Cols == 0 || idx%p.Cols == 0 {
				return model.ContentError{PuzzleID: p.ID, Reason: "answer cell in frame row/column at cell " + strconv.Itoa(idx)}
			}
			if utf8.RuneCountInString(p.SolutionGrid[idx]) != 1 {
				return model.ContentError{PuzzleID: p.ID, Reason: "solution letter must be a single character at cell " + strconv.Itoa(idx)}
			}
			answers++
		}
	}
	if answers == 0 {
		return model.ContentError{PuzzleID: p.ID, Reason: "puzzle has no answer cells"}
	}
	return nil
}
