package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-board/internal"
	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/terminal"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "tictactoe",
	Short:         "Two-player Tic Tac Toe on one board",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config.yml", "path to the config file")
	rootCmd.AddCommand(serveCmd(), playCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP and WebSocket",
		RunE: func(_ *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			logger := initLogger(conf)

			if err := app.RunApp(logger, conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return terminal.Play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), tictactoe.NewEngine())
		},
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
