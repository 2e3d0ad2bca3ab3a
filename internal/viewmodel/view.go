// Package viewmodel turns the engine status and board into the values a view
// layer renders. It carries no game rules of its own.
package viewmodel

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	ToneWinner = "winner"
	ToneDraw   = "draw"
	ToneX      = "x"
	ToneO      = "o"
)

// Cell is one rendered square.
type Cell struct {
	Index    int         `json:"index"`
	Value    entity.Mark `json:"value"`
	Winning  bool        `json:"winning"`
	Disabled bool        `json:"disabled"`
	Label    string      `json:"label"`
}

// View is everything needed to draw the status pill and the grid.
type View struct {
	StatusText string                 `json:"status_text"`
	Tone       string                 `json:"tone"`
	Outcome    entity.Outcome         `json:"outcome"`
	Next       entity.Mark            `json:"next,omitempty"`
	Winner     entity.Mark            `json:"winner,omitempty"`
	Line       *entity.Line           `json:"line,omitempty"`
	Finished   bool                   `json:"finished"`
	Cells      [entity.BoardSize]Cell `json:"cells"`
}

func Build(status entity.Status, board entity.Board) *View {
	view := &View{
		StatusText: statusText(status),
		Tone:       tone(status),
		Outcome:    status.Outcome,
		Next:       status.Next,
		Winner:     status.Winner,
		Line:       status.Line,
		Finished:   status.IsFinished(),
	}

	for idx, value := range board {
		view.Cells[idx] = Cell{
			Index:    idx,
			Value:    value,
			Winning:  status.Line != nil && status.Line.Contains(idx),
			Disabled: view.Finished || value != entity.EmptyCell,
			Label:    label(idx, value),
		}
	}

	return view
}

func statusText(status entity.Status) string {
	switch status.Outcome {
	case entity.OutcomeWon:
		return fmt.Sprintf("Winner: %s", status.Winner)
	case entity.OutcomeDrawn:
		return "Draw!"
	default:
		return fmt.Sprintf("Turn: %s", status.Next)
	}
}

func tone(status entity.Status) string {
	switch {
	case status.IsWon():
		return ToneWinner
	case status.IsDrawn():
		return ToneDraw
	case status.Next == entity.PlayerX:
		return ToneX
	default:
		return ToneO
	}
}

// label numbers squares from 1.
func label(idx int, value entity.Mark) string {
	if value == entity.EmptyCell {
		return fmt.Sprintf("Square %d", idx+1)
	}
	return fmt.Sprintf("Square %d, %s", idx+1, value)
}
