package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/notify"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/internal/viewmodel"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
	"github.com/rocketscienceinc/tictactoe-board/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	views := notify.NewLocal[*viewmodel.View](logger)
	boardUseCase := usecase.NewBoardUseCase(logger, tictactoe.NewEngine(), views)

	if conf.Redis.Enabled {
		relay, closeRelay, err := newRelay(ctx, logger, conf)
		if err != nil {
			return err
		}
		defer closeRelay()

		if err = boardUseCase.StartRelay(ctx, relay); err != nil {
			return fmt.Errorf("could not start command relay: %w", err)
		}

		log.Info("Relaying board commands over redis", "channel", conf.Redis.Channel)
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, boardUseCase)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, boardUseCase, views)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newRelay connects to redis and returns the channel every process sharing
// the game sends its commands through. The returned func closes the client.
func newRelay(ctx context.Context, logger *slog.Logger, conf *config.Config) (*notify.Redis[entity.Command], func(), error) {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, apperror.ErrRedisAddrEmpty
	}

	redisClient, err := notify.Dial(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	closeRedis := func() {
		if err := redisClient.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}

	return notify.NewRedis[entity.Command](logger, redisClient, conf.Redis.Channel), closeRedis, nil
}
