package game

import (
	"fmt"

	"linked/internal/model"
)

// Direction of a word run.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Word is a maximal run of answer cells in one direction. The ID is stable
// across calls ("a:<startIndex>" / "d:<startIndex>") and is what scoring uses
// to guarantee each word is only ever counted once.
type Word struct {
	ID        string
	Direction Direction
	Cells     []int
}

// Words extracts every word run from the puzzle. Runs of a single cell are
// not words on their own; they score through the perpendicular run that
// contains them.
func Words(p *model.Puzzle) []Word {
	var words []Word

	for row := 0; row < p.Rows; row++ {
		var run []int
		for col := 0; col <= p.Cols; col++ {
			idx := p.Index(row, col)
			if col < p.Cols && CellKindAt(p, idx) == KindAnswer {
				run = append(run, idx)
				continue
			}
			if len(run) >= 2 {
				words = append(words, Word{
					ID:        fmt.Sprintf("a:%d", run[0]),
					Direction: Across,
					Cells:     run,
				})
			}
			run = nil
		}
	}

	for col := 0; col < p.Cols; col++ {
		var run []int
		for row := 0; row <= p.Rows; row++ {
			idx := p.Index(row, col)
			if row < p.Rows && CellKindAt(p, idx) == KindAnswer {
				run = append(run, idx)
				continue
			}
			if len(run) >= 2 {
				words = append(words, Word{
					ID:        fmt.Sprintf("d:%d", run[0]),
					Direction: Down,
					Cells:     run,
				})
			}
			run = nil
		}
	}

	return words
}

// wordLocked reports whether every cell of the word is present in the board.
func wordLocked(w Word, board map[string]string) bool {
	for _, idx := range w.Cells {
		if _, ok := board[model.CellKey(idx)]; !ok {
			return false
		}
	}
	return true
}
