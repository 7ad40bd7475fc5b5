package game

import (
	"math/rand"
	"time"

	"linked/internal/model"
)

// DefaultRackSize bounds how many letters a player holds per turn.
const DefaultRackSize = 5

// Dealer deals board-grounded racks: every dealt letter is the solution
// letter of some currently-unfilled answer cell, so a rack is never padded
// with decoys and the client can never derive the solution from it.
type Dealer struct {
	rng      *rand.Rand
	rackSize int
}

// NewDealer creates a dealer with its own rand source.
func NewDealer(rackSize int) *Dealer {
	if rackSize <= 0 {
		rackSize = DefaultRackSize
	}
	return &Dealer{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		rackSize: rackSize,
	}
}

// NewSeededDealer creates a dealer with a fixed seed, for tests.
func NewSeededDealer(rackSize int, seed int64) *Dealer {
	d := NewDealer(rackSize)
	d.rng = rand.New(rand.NewSource(seed))
	return d
}

// Deal draws up to rackSize letters from the solution letters of answer
// cells not yet present in board. Duplicates are valid when the puzzle needs
// multiple instances of a letter; if fewer unfilled cells remain than the
// rack size, the rack is simply shorter.
func (d *Dealer) Deal(p *model.Puzzle, board map[string]string) []string {
	var letters []string
	for _, idx := range AnswerCells(p) {
		if _, filled := board[model.CellKey(idx)]; filled {
			continue
		}
		letters = append(letters, p.SolutionGrid[idx])
	}

	d.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	if len(letters) > d.rackSize {
		letters = letters[:d.rackSize]
	}
	return letters
}
