// Package terminal runs a hot-seat game on a text terminal.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

const (
	commandReset = "r"
	commandQuit  = "q"
)

type gameEngine interface {
	ApplyMove(cell int) bool
	Reset()
	CurrentStatus() entity.Status
	Board() entity.Board
}

// Play reads one command per line from in and redraws the board on out after
// each of them. Squares are numbered 1 to 9. It returns when in is exhausted,
// the quit command is read or ctx is done.
func Play(ctx context.Context, in io.Reader, out io.Writer, engine gameEngine) error {
	if err := render(out, engine); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil //nolint: nilerr // cancellation ends the game
		}

		switch command := strings.TrimSpace(strings.ToLower(scanner.Text())); command {
		case commandQuit:
			return nil
		case commandReset:
			engine.Reset()
		default:
			// anything that is not a square on the board is ignored like any invalid move
			if square, err := strconv.Atoi(command); err == nil {
				engine.ApplyMove(square - 1)
			}
		}

		if err := render(out, engine); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func render(out io.Writer, engine gameEngine) error {
	view := viewmodel.Build(engine.CurrentStatus(), engine.Board())

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = true

	for row := 0; row < 3; row++ {
		cells := make(table.Row, 0, 3)
		for _, cell := range view.Cells[row*3 : row*3+3] {
			cells = append(cells, cellText(cell))
		}
		tw.AppendRow(cells)
	}

	hint := "square 1-9, r to reset, q to quit"
	if view.Finished {
		hint = "r to reset, q to quit"
	}

	if _, err := fmt.Fprintf(out, "%s\n%s\n%s > ", tw.Render(), view.StatusText, hint); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// cellText shows the mark, the square number for a playable cell, or a
// bracketed mark for a cell of the winning line.
func cellText(cell viewmodel.Cell) string {
	switch {
	case cell.Winning:
		return fmt.Sprintf("[%s]", cell.Value)
	case cell.Value != entity.EmptyCell:
		return fmt.Sprintf(" %s ", cell.Value)
	case cell.Disabled:
		return "   "
	default:
		return fmt.Sprintf(" %d ", cell.Index+1)
	}
}
