package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDrawn      Outcome = "drawn"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// WinLines are scanned in this order: rows, columns, diagonals.
// The first completed line decides the winner.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark is the content of a cell and the symbol of a player.
type Mark string

// Outcome is the kind of a Status.
type Outcome string

// Line is a triple of cell indices.
type Line [3]int

// Board holds the cells in row-major order.
type Board [BoardSize]Mark

// Status is the derived state of a game. Next is set only while in progress,
// Winner and Line only when won.
type Status struct {
	Outcome Outcome `json:"outcome"`
	Next    Mark    `json:"next,omitempty"`
	Winner  Mark    `json:"winner,omitempty"`
	Line    *Line   `json:"line,omitempty"`
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Status) IsFinished() bool {
	return that.Outcome == OutcomeWon || that.Outcome == OutcomeDrawn
}

func (that Status) IsWon() bool {
	return that.Outcome == OutcomeWon
}

func (that Status) IsDrawn() bool {
	return that.Outcome == OutcomeDrawn
}

// Contains reports whether cell is one of the line's indices.
func (that Line) Contains(cell int) bool {
	for _, idx := range that {
		if idx == cell {
			return true
		}
	}
	return false
}

// WinningLine returns the first completed line and its owner.
func (that *Board) WinningLine() (Line, Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return line, a, true
		}
	}

	return Line{}, EmptyCell, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) IsEmptyAt(cell int) bool {
	return cell >= 0 && cell < len(that) && that[cell] == EmptyCell
}

// Evaluate derives the status of board; next is reported only while the game
// is still in progress.
func Evaluate(board Board, next Mark) Status {
	if line, winner, ok := board.WinningLine(); ok {
		return Status{
			Outcome: OutcomeWon,
			Winner:  winner,
			Line:    &line,
		}
	}

	// the game continues until all the squares are full
	if board.IsFull() {
		return Status{Outcome: OutcomeDrawn}
	}

	return Status{
		Outcome: OutcomeInProgress,
		Next:    next,
	}
}
