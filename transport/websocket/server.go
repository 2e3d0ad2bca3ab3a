package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

const shutdownTimeout = 5 * time.Second

type boardUseCase interface {
	View(ctx context.Context) *viewmodel.View
	MakeMove(ctx context.Context, cell int) *viewmodel.View
	Reset(ctx context.Context) *viewmodel.View
}

type subscriber interface {
	Subscribe(ctx context.Context) (<-chan *viewmodel.View, func(), error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *websocket.Conn) error

// Server pushes the board to every connected view and accepts moves from them.
type Server struct {
	logger *slog.Logger
	board  boardUseCase
	broker subscriber

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, board boardUseCase, broker subscriber) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		board:  board,
		broker: broker,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionReset] = server.handleReset

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	// no read or write timeouts: connections are long lived
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx) //nolint: contextcheck // parent is already done
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the connection and serves it until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "") //nolint: errcheck // no-op after a normal close

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	updates, unsubscribe, err := that.broker.Subscribe(ctx)
	if err != nil {
		log.Error("failed to subscribe to board updates", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "board updates unavailable")
		return
	}
	defer unsubscribe()

	log.Info("WebSocket connection established")

	if err = that.handleState(ctx, nil, conn); err != nil {
		log.Error("failed to send board", "error", err)
		return
	}

	go that.forwardUpdates(ctx, conn, updates)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (that *Server) forwardUpdates(ctx context.Context, conn *websocket.Conn, updates <-chan *viewmodel.View) {
	log := that.logger.With("method", "forwardUpdates")

	for view := range updates {
		if err := that.sendMessage(ctx, conn, actionUpdate, Payload{View: view}); err != nil {
			log.Debug("failed to forward update", "error", err)
			return
		}
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return nil
			default:
				return fmt.Errorf("failed to read message: %w", err)
			}
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(ctx, conn, apperror.ErrInvalidPayload); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(ctx, conn, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, message.Action)); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
