package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

const (
	actionState  = "board:state"
	actionMove   = "board:move"
	actionReset  = "board:reset"
	actionUpdate = "board:update"
	actionError  = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Cell  *int            `json:"cell,omitempty"`
	View  *viewmodel.View `json:"view,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadJSON,
	}

	if err = wsjson.Write(ctx, conn, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(ctx context.Context, conn *websocket.Conn, cause error) error {
	return that.sendMessage(ctx, conn, actionError, Payload{Error: cause.Error()})
}
