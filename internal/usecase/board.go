package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
)

type gameEngine interface {
	ApplyMove(cell int) bool
	Reset()
	CurrentStatus() entity.Status
	Board() entity.Board
}

type publisher interface {
	Publish(ctx context.Context, view *viewmodel.View) error
}

type commandRelay interface {
	Publish(ctx context.Context, cmd entity.Command) error
	Subscribe(ctx context.Context) (<-chan entity.Command, func(), error)
}

// BoardUseCase serializes access to one engine for concurrent callers and
// announces every change of the board. Updates are published under the lock
// so subscribers see them in move order.
//
// With a relay started, moves and resets are not applied directly: they are
// sent through the relay and applied when they come back, in the order the
// relay delivers them. Every process sharing the relay does the same, so all
// engines go through the same sequence of commands.
type BoardUseCase struct {
	logger *slog.Logger

	mu        sync.Mutex
	engine    gameEngine
	publisher publisher

	relay     commandRelay
	relayDone chan struct{}

	waitersMu sync.Mutex
	waiters   map[string]chan *viewmodel.View
}

func NewBoardUseCase(logger *slog.Logger, engine gameEngine, publisher publisher) *BoardUseCase {
	return &BoardUseCase{
		logger: logger.With("component", "usecase.board"),

		engine:    engine,
		publisher: publisher,

		waiters: make(map[string]chan *viewmodel.View),
	}
}

// StartRelay subscribes to the relay and applies its commands until ctx is
// done. It must be called before the use case serves any request.
func (that *BoardUseCase) StartRelay(ctx context.Context, relay commandRelay) error {
	commands, unsubscribe, err := relay.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to board commands: %w", err)
	}

	that.relay = relay
	that.relayDone = make(chan struct{})

	go that.runRelay(ctx, commands, unsubscribe)

	return nil
}

func (that *BoardUseCase) View(_ context.Context) *viewmodel.View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}

// MakeMove applies a move for whoever's turn it is. An ignored move returns
// the unchanged view and is not announced.
func (that *BoardUseCase) MakeMove(ctx context.Context, cell int) *viewmodel.View {
	return that.execute(ctx, entity.Command{ID: uuid.NewString(), Action: entity.CommandMove, Cell: cell})
}

func (that *BoardUseCase) Reset(ctx context.Context) *viewmodel.View {
	return that.execute(ctx, entity.Command{ID: uuid.NewString(), Action: entity.CommandReset})
}

// execute returns the view right after cmd was applied. When the relay fails
// or stops, the command may never be applied and the current view is returned.
func (that *BoardUseCase) execute(ctx context.Context, cmd entity.Command) *viewmodel.View {
	if that.relay == nil {
		return that.apply(ctx, cmd)
	}

	log := that.logger.With("method", "execute", "command", cmd.ID, "action", cmd.Action)

	waiter := make(chan *viewmodel.View, 1)

	that.waitersMu.Lock()
	that.waiters[cmd.ID] = waiter
	that.waitersMu.Unlock()

	defer func() {
		that.waitersMu.Lock()
		delete(that.waiters, cmd.ID)
		that.waitersMu.Unlock()
	}()

	if err := that.relay.Publish(ctx, cmd); err != nil {
		log.Error("failed to relay command", "error", err)
		return that.View(ctx)
	}

	select {
	case view := <-waiter:
		return view
	case <-that.relayDone:
		log.Warn("relay stopped before the command came back")
	case <-ctx.Done():
		log.Warn("gave up waiting for the command", "error", ctx.Err())
	}

	return that.View(ctx)
}

func (that *BoardUseCase) runRelay(ctx context.Context, commands <-chan entity.Command, unsubscribe func()) {
	defer close(that.relayDone)
	defer unsubscribe()

	for cmd := range commands {
		view := that.apply(ctx, cmd)

		that.waitersMu.Lock()
		if waiter, ok := that.waiters[cmd.ID]; ok {
			waiter <- view
			delete(that.waiters, cmd.ID)
		}
		that.waitersMu.Unlock()
	}

	that.logger.Info("command relay stopped")
}

func (that *BoardUseCase) apply(ctx context.Context, cmd entity.Command) *viewmodel.View {
	log := that.logger.With("method", "apply", "action", cmd.Action)

	that.mu.Lock()
	defer that.mu.Unlock()

	switch cmd.Action {
	case entity.CommandMove:
		applied := that.engine.ApplyMove(cmd.Cell)
		view := that.view()

		if !applied {
			log.Debug("move ignored", "cell", cmd.Cell, "outcome", view.Outcome)
			return view
		}

		log.Info("move applied", "cell", cmd.Cell, "outcome", view.Outcome)
		that.publish(ctx, view)

		return view

	case entity.CommandReset:
		that.engine.Reset()
		view := that.view()

		log.Info("board reset")
		that.publish(ctx, view)

		return view

	default:
		log.Warn("unknown command ignored")
		return that.view()
	}
}

func (that *BoardUseCase) view() *viewmodel.View {
	return viewmodel.Build(that.engine.CurrentStatus(), that.engine.Board())
}

func (that *BoardUseCase) publish(ctx context.Context, view *viewmodel.View) {
	if err := that.publisher.Publish(ctx, view); err != nil {
		that.logger.Error("failed to publish board update", "error", err)
	}
}
