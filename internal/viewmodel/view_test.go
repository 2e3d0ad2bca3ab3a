package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

func TestBuild(t *testing.T) {
	t.Run("Fresh board", func(t *testing.T) {
		// Given: an empty board with X to move
		board := entity.Board{}
		status := entity.Evaluate(board, entity.PlayerX)

		// When: the view is built
		view := Build(status, board)

		// Then: every cell is playable and the status names X
		require.Equal(t, "Turn: X", view.StatusText)
		assert.Equal(t, ToneX, view.Tone)
		assert.False(t, view.Finished)
		assert.Nil(t, view.Line)

		for idx, cell := range view.Cells {
			assert.Equal(t, idx, cell.Index)
			assert.False(t, cell.Disabled)
			assert.False(t, cell.Winning)
		}

		assert.Equal(t, "Square 1", view.Cells[0].Label)
		assert.Equal(t, "Square 9", view.Cells[8].Label)
	})

	t.Run("Occupied cells are disabled", func(t *testing.T) {
		// Given: X has taken the center, O is to move
		board := entity.Board{4: entity.PlayerX}
		status := entity.Evaluate(board, entity.PlayerO)

		// When: the view is built
		view := Build(status, board)

		// Then: only the center is disabled
		require.Equal(t, "Turn: O", view.StatusText)
		assert.Equal(t, ToneO, view.Tone)
		assert.True(t, view.Cells[4].Disabled)
		assert.Equal(t, "Square 5, X", view.Cells[4].Label)
		assert.False(t, view.Cells[0].Disabled)
	})

	t.Run("Won board highlights the line", func(t *testing.T) {
		// Given: X has completed the left column
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.PlayerO, entity.EmptyCell,
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
		}
		status := entity.Evaluate(board, entity.PlayerO)

		// When: the view is built
		view := Build(status, board)

		// Then: the winner is named and every cell is disabled
		require.Equal(t, "Winner: X", view.StatusText)
		assert.Equal(t, ToneWinner, view.Tone)
		assert.True(t, view.Finished)
		assert.Equal(t, entity.PlayerX, view.Winner)
		assert.Empty(t, view.Next)

		for idx, cell := range view.Cells {
			assert.True(t, cell.Disabled, "cell %d", idx)
			assert.Equal(t, idx == 0 || idx == 3 || idx == 6, cell.Winning, "cell %d", idx)
		}
	})

	t.Run("Drawn board", func(t *testing.T) {
		// Given: a full board without a line
		board := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerO, entity.PlayerX, entity.PlayerX,
		}
		status := entity.Evaluate(board, entity.PlayerO)

		// When: the view is built
		view := Build(status, board)

		// Then: the status reports the draw
		require.Equal(t, "Draw!", view.StatusText)
		assert.Equal(t, ToneDraw, view.Tone)
		assert.True(t, view.Finished)
		assert.Equal(t, entity.OutcomeDrawn, view.Outcome)
	})
}
