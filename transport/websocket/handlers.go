package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

func (that *Server) handleState(ctx context.Context, _ *Message, conn *websocket.Conn) error {
	return that.sendMessage(ctx, conn, actionState, Payload{View: that.board.View(ctx)})
}

func (that *Server) handleMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMove")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil || payloadReq.Cell == nil {
		log.Error("cell is missing in payload", "error", err)
		return that.sendErrorResponse(ctx, conn, fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload))
	}

	view := that.board.MakeMove(ctx, *payloadReq.Cell)

	return that.sendMessage(ctx, conn, actionMove, Payload{View: view})
}

func (that *Server) handleReset(ctx context.Context, _ *Message, conn *websocket.Conn) error {
	return that.sendMessage(ctx, conn, actionReset, Payload{View: that.board.Reset(ctx)})
}
