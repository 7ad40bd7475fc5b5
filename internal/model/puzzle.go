package model

// VoidCell is the sentinel used in SolutionGrid for non-interactive filler cells.
const VoidCell = "#"

// ActivityLinked is the activity tag for the arroword game.
const ActivityLinked = "linked"

// Clue is a single clue entry referenced from a clue cell via ClueMarkers.
type Clue struct {
	Type           string `json:"type" bson:"type"`
	Content        string `json:"content" bson:"content"`
	ArrowDirection string `json:"arrowDirection" bson:"arrowDirection"` // "right" or "down"
	TargetIndex    int    `json:"targetIndex" bson:"targetIndex"`       // first cell of the governed word
}

// Puzzle is an immutable arroword definition loaded from content.
//
// Cells are addressed by index = row*Cols + col. A cell is a clue cell when
// ClueMarkers[index] != 0 (the marker value keys into Clues); otherwise
// SolutionGrid[index] is either VoidCell or the correct letter of an answer
// cell. Row 0 and column 0 never contain answer cells.
type Puzzle struct {
	ID           string          `json:"id" bson:"_id"`
	ActivityType string          `json:"activityType" bson:"activityType"`
	Branch       int             `json:"branch" bson:"branch"`
	Rows         int             `json:"rows" bson:"rows"`
	Cols         int             `json:"cols" bson:"cols"`
	SolutionGrid []string        `json:"solutionGrid" bson:"solutionGrid"`
	ClueMarkers  []int           `json:"clueMarkers" bson:"clueMarkers"`
	Clues        map[string]Clue `json:"clues" bson:"clues"` // keyed by marker value as decimal string
}

// Index converts (row, col) to a flat cell index.
func (p *Puzzle) Index(row, col int) int {
	return row*p.Cols + col
}

// CellCount returns the total number of cells in the grid.
func (p *Puzzle) CellCount() int {
	return p.Rows * p.Cols
}
