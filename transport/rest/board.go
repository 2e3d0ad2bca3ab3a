package rest

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

type boardUseCase interface {
	View(ctx context.Context) *viewmodel.View
	MakeMove(ctx context.Context, cell int) *viewmodel.View
	Reset(ctx context.Context) *viewmodel.View
}

type viewOutput struct {
	Body *viewmodel.View
}

type moveInput struct {
	Body struct {
		Cell int `json:"cell" doc:"Cell index, 0..8 in row-major order. Moves on occupied cells, off the board or after the game has ended are ignored."`
	}
}

func registerBoard(api huma.API, board boardUseCase) {
	huma.Register(api, huma.Operation{
		OperationID: "get-board",
		Method:      http.MethodGet,
		Path:        "/board",
		Summary:     "Current board",
		Tags:        []string{"board"},
	}, func(ctx context.Context, _ *struct{}) (*viewOutput, error) {
		return &viewOutput{Body: board.View(ctx)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "make-move",
		Method:      http.MethodPost,
		Path:        "/board/moves",
		Summary:     "Place the next mark",
		Tags:        []string{"board"},
	}, func(ctx context.Context, input *moveInput) (*viewOutput, error) {
		return &viewOutput{Body: board.MakeMove(ctx, input.Body.Cell)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reset-board",
		Method:      http.MethodPost,
		Path:        "/board/reset",
		Summary:     "Start a new game",
		Tags:        []string{"board"},
	}, func(ctx context.Context, _ *struct{}) (*viewOutput, error) {
		return &viewOutput{Body: board.Reset(ctx)}, nil
	})
}
