// Package tictactoe holds the state of a single board and the rules for
// changing it.
package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// Engine owns one board and the turn marker. It is not safe for concurrent
// use; callers that share an Engine must serialize access.
type Engine struct {
	board entity.Board
	turn  entity.Mark
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// ApplyMove places the current turn's mark on cell and passes the turn.
// A move on a finished game, an occupied cell or an index outside the board
// is ignored; the returned flag reports whether the move was applied.
func (that *Engine) ApplyMove(cell int) bool {
	if !that.canMove(cell) {
		return false
	}

	that.board[cell] = that.turn
	that.turn = that.turn.Opponent()

	return true
}

// Reset clears the board and gives the first move to X.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
}

// CurrentStatus derives the game status from the board.
func (that *Engine) CurrentStatus() entity.Status {
	return entity.Evaluate(that.board, that.turn)
}

// Board returns a copy of the cells.
func (that *Engine) Board() entity.Board {
	return that.board
}

// canMove - checks if the move is valid.
func (that *Engine) canMove(cell int) bool {
	if that.CurrentStatus().IsFinished() {
		return false
	}

	return that.board.IsEmptyAt(cell)
}
